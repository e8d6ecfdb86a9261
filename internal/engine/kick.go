package engine

// RotationDir is the direction of a rotation request.
type RotationDir int

const (
	RotateCW  RotationDir = 1
	RotateCCW RotationDir = -1
)

// Offset is a kick candidate: a translation tried against the board after
// the orientation change. DY is positive downward, matching board rows.
type Offset struct {
	DX, DY int
}

// Wall-kick tables in Super Rotation System order. Candidates are tried
// first to last; the first placement the board accepts wins. The published
// tables use an upward-positive y axis, so the vertical components here are
// negated to match the row-down grid.
//
// jlstzKicks covers J, L, S, T and Z. The I piece gets its own wider table
// and the O piece never kicks (rotation is a no-op for it).
var jlstzKicks = map[[2]int][]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[[2]int][]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// KickOffsets returns the ordered kick candidates for rotating the given
// kind from one orientation to another.
func KickOffsets(kind Kind, from, to int) []Offset {
	switch kind {
	case KindO:
		return []Offset{{0, 0}}
	case KindI:
		return iKicks[[2]int{from, to}]
	default:
		return jlstzKicks[[2]int{from, to}]
	}
}

// TryRotate attempts to rotate the piece in the given direction against the
// board. It walks the kick table in order and returns the first legal
// placement. The second return is false when every candidate is blocked;
// the input piece is returned unchanged in that case.
//
// The O piece reports success without moving, so a rotation input still
// counts as a successful rotation for lock-delay purposes.
func TryRotate(b *Board, p Piece, dir RotationDir) (Piece, bool) {
	from := p.Rot
	to := ((from+int(dir))%4 + 4) % 4

	for _, off := range KickOffsets(p.Kind, from, to) {
		candidate := p.Rotated(to).Moved(off.DX, off.DY)
		if b.CanPlace(candidate) {
			return candidate, true
		}
	}
	return p, false
}
