// Package engine implements the falling-block game core: board state, the
// seven-piece model, rotation with wall kicks, lock delay, line clears with
// spin detection, scoring, and the per-tick state machine. It contains pure
// logic with no terminal dependencies.
package engine

import (
	"fmt"

	"github.com/averyhale/tetrion/internal/core"
)

// Kind identifies one of the seven tetromino shapes. The zero value marks
// an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the seven playable piece kinds in bag order.
var Kinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// Color returns the render color for the kind, matching the classic palette.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Cell is a board coordinate: X is the column, Y the row, rows growing
// downward.
type Cell struct {
	X, Y int
}

// shapeGrids defines each kind's four orientations as string grids.
// Orientation indices follow the rotation system convention:
// 0 = spawn, 1 = one clockwise turn, 2 = two turns, 3 = one counter-clockwise
// turn. The I piece uses a 4x4 box, O a 2x2 box, the rest 3x3 boxes.
var shapeGrids = map[Kind][4][]string{
	KindI: {
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
		{"....", "....", "XXXX", "...."},
		{".X..", ".X..", ".X..", ".X.."},
	},
	KindO: {
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
	},
	KindT: {
		{".X.", "XXX", "..."},
		{".X.", ".XX", ".X."},
		{"...", "XXX", ".X."},
		{".X.", "XX.", ".X."},
	},
	KindS: {
		{".XX", "XX.", "..."},
		{".X.", ".XX", "..X"},
		{"...", ".XX", "XX."},
		{"X..", "XX.", ".X."},
	},
	KindZ: {
		{"XX.", ".XX", "..."},
		{"..X", ".XX", ".X."},
		{"...", "XX.", ".XX"},
		{".X.", "XX.", "X.."},
	},
	KindJ: {
		{"X..", "XXX", "..."},
		{".XX", ".X.", ".X."},
		{"...", "XXX", "..X"},
		{".X.", ".X.", "XX."},
	},
	KindL: {
		{"..X", "XXX", "..."},
		{".X.", ".X.", ".XX"},
		{"...", "XXX", "X.."},
		{"XX.", ".X.", ".X."},
	},
}

// pieceCells holds the parsed cell offsets per kind and orientation.
var pieceCells = func() map[Kind][4][]Cell {
	parsed := make(map[Kind][4][]Cell, len(shapeGrids))
	for kind, grids := range shapeGrids {
		var rots [4][]Cell
		for rot, grid := range grids {
			var cells []Cell
			for y, row := range grid {
				for x, ch := range row {
					if ch == 'X' {
						cells = append(cells, Cell{X: x, Y: y})
					}
				}
			}
			if len(cells) != 4 {
				panic(fmt.Sprintf("engine: shape %s rotation %d has %d cells", kind, rot, len(cells)))
			}
			rots[rot] = cells
		}
		parsed[kind] = rots
	}
	return parsed
}()

// boxWidth returns the width of the kind's bounding box, used to center the
// spawn position.
func boxWidth(kind Kind) int {
	return len(shapeGrids[kind][0][0])
}

// Piece is the active falling piece: a kind, an orientation, and the board
// position of its bounding-box origin. Pieces are plain values; movement and
// rotation produce modified copies that are validated against the board
// before being adopted.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

// NewPiece creates a piece of the given kind at its spawn position:
// horizontally centered, inside the hidden buffer rows above the visible
// field.
func NewPiece(kind Kind) Piece {
	return Piece{
		Kind: kind,
		Rot:  0,
		X:    (BoardWidth - boxWidth(kind)) / 2,
		Y:    BufferRows - 2,
	}
}

// Cells returns the absolute board coordinates of the piece's four blocks.
func (p Piece) Cells() []Cell {
	offsets := pieceCells[p.Kind][p.Rot]
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned to the given orientation.
func (p Piece) Rotated(rot int) Piece {
	p.Rot = ((rot % 4) + 4) % 4
	return p
}
