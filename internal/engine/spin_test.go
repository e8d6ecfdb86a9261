package engine

import "testing"

// tSlotBoard builds a board with a T in the nub-down orientation resting in
// a slot, with the given diagonal corners of its center filled. Corner
// order matches ClassifySpin: TL, TR, BL, BR.
func tSlotBoard(corners [4]bool) (*Board, Piece) {
	b := NewBoard()
	p := Piece{Kind: KindT, Rot: 2, X: 3, Y: 19}
	cx, cy := p.X+1, p.Y+1

	at := [4]Cell{
		{X: cx - 1, Y: cy - 1},
		{X: cx + 1, Y: cy - 1},
		{X: cx - 1, Y: cy + 1},
		{X: cx + 1, Y: cy + 1},
	}
	for i, set := range corners {
		if set {
			b.grid[at[i].Y][at[i].X] = KindJ
		}
	}
	return b, p
}

func TestClassifySpin(t *testing.T) {
	tests := []struct {
		name     string
		corners  [4]bool // TL, TR, BL, BR
		rotation bool
		want     SpinKind
	}{
		{"no corners", [4]bool{}, true, SpinNone},
		{"two corners", [4]bool{true, true, false, false}, true, SpinNone},
		{"three with both front", [4]bool{true, false, true, true}, true, SpinFull},
		{"three without both front", [4]bool{true, true, true, false}, true, SpinMini},
		{"all four", [4]bool{true, true, true, true}, true, SpinFull},
		{"no rotation", [4]bool{true, true, true, true}, false, SpinNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, p := tSlotBoard(tt.corners)
			if got := ClassifySpin(b, p, tt.rotation); got != tt.want {
				t.Errorf("ClassifySpin = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifySpinNonT(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: KindS, Rot: 1, X: 3, Y: 19}
	if got := ClassifySpin(b, p, true); got != SpinNone {
		t.Errorf("non-T piece classified as %s", got)
	}
}

func TestClassifySpinWallCorners(t *testing.T) {
	// A T against the left wall: the two wall-side corners count as
	// occupied, so one filled board corner reaches the three-corner rule.
	b := NewBoard()
	p := Piece{Kind: KindT, Rot: 1, X: -1, Y: 19}
	b.grid[p.Y+2][p.X+2] = KindJ // bottom-right corner of the center

	got := ClassifySpin(b, p, true)
	if got == SpinNone {
		t.Fatal("wall corners not counted")
	}
	// Front corners for nub-right are TR and BR; TR is open board, so
	// this is a mini.
	if got != SpinMini {
		t.Errorf("ClassifySpin = %s, want %s", got, SpinMini)
	}
}

func TestResolveLockClearsAndReportsSpin(t *testing.T) {
	b := NewBoard()

	// A nub-down T in a slot: its bar completes the second row from the
	// bottom, its nub pokes into the bottom row between the slot walls.
	p := Piece{Kind: KindT, Rot: 2, X: 3, Y: TotalRows - 3}
	barY := TotalRows - 2
	for x := 0; x < BoardWidth; x++ {
		if x < 3 || x > 5 {
			b.grid[barY][x] = KindL
		}
	}
	// Slot walls on the bottom row double as the BL/BR corners; TL/TR
	// overhangs complete the four-corner count.
	b.grid[TotalRows-1][3] = KindL
	b.grid[TotalRows-1][5] = KindL
	b.grid[TotalRows-3][3] = KindL
	b.grid[TotalRows-3][5] = KindL

	res := ResolveLock(b, p, true)
	if len(res.Lines) != 1 {
		t.Fatalf("cleared %d lines, want 1", len(res.Lines))
	}
	if res.Spin != SpinFull {
		t.Errorf("spin = %s, want %s", res.Spin, SpinFull)
	}
	// The bottom row survives the clear untouched.
	if b.At(4, TotalRows-1) != KindT {
		t.Error("nub vanished from the bottom row")
	}
	// The overhangs above the cleared row shifted down one row.
	if b.At(3, barY) != KindL || b.At(5, barY) != KindL {
		t.Error("overhangs did not shift down after the clear")
	}
}

func TestResolveLockNoClear(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: KindO, Rot: 0, X: 0, Y: TotalRows - 2}

	res := ResolveLock(b, p, false)
	if len(res.Lines) != 0 || res.Spin != SpinNone {
		t.Errorf("ResolveLock = %+v, want no lines, no spin", res)
	}
	if b.At(0, TotalRows-1) != KindO {
		t.Error("piece not written to the board")
	}
}
