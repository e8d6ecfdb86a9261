package engine

// SpinKind classifies the special-move status of a lock.
type SpinKind int

const (
	SpinNone SpinKind = iota
	SpinMini
	SpinFull
)

// String returns a readable spin name.
func (s SpinKind) String() string {
	switch s {
	case SpinMini:
		return "t-spin mini"
	case SpinFull:
		return "t-spin"
	default:
		return "none"
	}
}

// tFrontCorners gives, per T orientation, which of the four diagonal
// corners around the center flank the side the nub points toward. Corner
// order: 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
var tFrontCorners = [4][2]int{
	{0, 1}, // nub up
	{1, 3}, // nub right
	{2, 3}, // nub down
	{0, 2}, // nub left
}

// ClassifySpin determines the T-spin status of a piece about to lock.
// Only a T piece whose last successful move was a rotation can spin; a
// plain translation into a pocket never counts.
//
// The corner rule: take the four diagonal neighbors of the T's center (a
// wall or floor counts as occupied). Fewer than three occupied is no spin.
// With three or more, the clear is a full T-spin when both front corners
// are filled, and a mini otherwise.
func ClassifySpin(b *Board, p Piece, lastMoveWasRotation bool) SpinKind {
	if p.Kind != KindT || !lastMoveWasRotation {
		return SpinNone
	}

	// The T center sits at offset (1,1) of its 3x3 box in every
	// orientation.
	cx, cy := p.X+1, p.Y+1

	corners := [4]Cell{
		{X: cx - 1, Y: cy - 1}, // top-left
		{X: cx + 1, Y: cy - 1}, // top-right
		{X: cx - 1, Y: cy + 1}, // bottom-left
		{X: cx + 1, Y: cy + 1}, // bottom-right
	}

	occupied := 0
	var filled [4]bool
	for i, c := range corners {
		if b.Occupied(c.X, c.Y) {
			filled[i] = true
			occupied++
		}
	}

	if occupied < 3 {
		return SpinNone
	}

	front := tFrontCorners[p.Rot]
	if filled[front[0]] && filled[front[1]] {
		return SpinFull
	}
	return SpinMini
}

// ClearResult is the outcome of the post-lock scan: how many rows vanished
// and whether the lock qualified as a T-spin.
type ClearResult struct {
	Lines []int
	Spin  SpinKind
}

// ResolveLock classifies the spin, writes the piece into the board, and
// clears full rows. Classification runs before the write so the corner test
// sees only the terrain the piece rotated into.
func ResolveLock(b *Board, p Piece, lastMoveWasRotation bool) ClearResult {
	spin := ClassifySpin(b, p, lastMoveWasRotation)
	b.Lock(p)
	return ClearResult{
		Lines: b.ClearFullRows(),
		Spin:  spin,
	}
}
