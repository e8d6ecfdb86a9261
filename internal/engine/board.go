package engine

import "fmt"

// Board dimensions. The grid carries extra hidden rows above the visible
// field so pieces can spawn and rotate out of sight; only spawn collision
// inside that buffer ends the game.
const (
	BoardWidth   = 10
	VisibleRows  = 20
	BufferRows   = 4
	TotalRows    = VisibleRows + BufferRows
)

// Board is the grid of locked cells. Cell (0,0) is the top-left of the
// hidden buffer; visible play starts at row BufferRows. A locked cell never
// changes once set except by line removal.
type Board struct {
	grid [TotalRows][BoardWidth]Kind
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the locked kind at (x, y), or KindNone when empty.
// Out-of-bounds coordinates read as empty.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= BoardWidth || y < 0 || y >= TotalRows {
		return KindNone
	}
	return b.grid[y][x]
}

// Occupied reports whether (x, y) is outside the field or holds a locked
// cell. Coordinates above the top of the grid count as free so pieces can
// rotate at the ceiling.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= BoardWidth || y >= TotalRows {
		return true
	}
	if y < 0 {
		return false
	}
	return b.grid[y][x] != KindNone
}

// CanPlace reports whether every cell of the piece is inside the field and
// free of locked blocks.
func (b *Board) CanPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the grid. Cells above the top of the
// grid are dropped: Occupied treats them as free, so a piece kicked over
// the ceiling on a full stack can legally lock there. Writing into an
// occupied cell means the collision checks upstream are broken; that is an
// internal defect, not a game event, so it panics.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		if c.Y >= TotalRows || c.X < 0 || c.X >= BoardWidth {
			panic(fmt.Sprintf("engine: lock out of bounds at (%d,%d)", c.X, c.Y))
		}
		if b.grid[c.Y][c.X] != KindNone {
			panic(fmt.Sprintf("engine: lock into occupied cell (%d,%d)", c.X, c.Y))
		}
		b.grid[c.Y][c.X] = p.Kind
	}
}

// ClearFullRows removes every row with all cells occupied, shifts the rows
// above down, and returns the cleared row indices from bottom to top.
func (b *Board) ClearFullRows() []int {
	var cleared []int
	for y := TotalRows - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		cleared = append(cleared, y)
	}
	if len(cleared) == 0 {
		return nil
	}

	// Rebuild the grid keeping only incomplete rows, padding empty rows on
	// top. Relative order of surviving rows is preserved.
	var next [TotalRows][BoardWidth]Kind
	dst := TotalRows - 1
	for y := TotalRows - 1; y >= 0; y-- {
		if b.rowFull(y) {
			continue
		}
		next[dst] = b.grid[y]
		dst--
	}
	b.grid = next
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.grid[y][x] == KindNone {
			return false
		}
	}
	return true
}

// IsSpawnBlocked reports whether a freshly spawned piece of the given kind
// cannot be placed. Spawn collision is the sole game-over trigger.
func (b *Board) IsSpawnBlocked(kind Kind) bool {
	return !b.CanPlace(NewPiece(kind))
}
