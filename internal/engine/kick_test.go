package engine

import "testing"

func TestKickTablesFirstCandidateIsIdentity(t *testing.T) {
	for _, kind := range Kinds {
		for from := 0; from < 4; from++ {
			for _, to := range []int{(from + 1) % 4, (from + 3) % 4} {
				offs := KickOffsets(kind, from, to)
				if len(offs) == 0 {
					t.Fatalf("%s %d->%d: empty kick table", kind, from, to)
				}
				if offs[0] != (Offset{0, 0}) {
					t.Errorf("%s %d->%d: first candidate %v, want {0 0}", kind, from, to, offs[0])
				}
			}
		}
	}
}

func TestKickTableWidth(t *testing.T) {
	for _, kind := range Kinds {
		if kind == KindO {
			continue
		}
		for from := 0; from < 4; from++ {
			to := (from + 1) % 4
			if n := len(KickOffsets(kind, from, to)); n != 5 {
				t.Errorf("%s %d->%d: %d candidates, want 5", kind, from, to, n)
			}
		}
	}
}

func TestTryRotateFreeSpace(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindT)

	got, ok := TryRotate(b, p, RotateCW)
	if !ok {
		t.Fatal("rotation in open space rejected")
	}
	if got.Rot != 1 || got.X != p.X || got.Y != p.Y {
		t.Errorf("rotation moved the piece: rot=%d pos=(%d,%d), want rot=1 pos=(%d,%d)",
			got.Rot, got.X, got.Y, p.X, p.Y)
	}

	got, ok = TryRotate(b, got, RotateCCW)
	if !ok || got.Rot != 0 {
		t.Errorf("counter-rotation did not return to spawn orientation, rot=%d ok=%v", got.Rot, ok)
	}
}

func TestTryRotateOIsNoOp(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindO)

	got, ok := TryRotate(b, p, RotateCW)
	if !ok {
		t.Fatal("O rotation must report success")
	}
	if got.X != p.X || got.Y != p.Y {
		t.Errorf("O rotation moved the piece to (%d,%d)", got.X, got.Y)
	}
}

func TestTryRotateWallKick(t *testing.T) {
	b := NewBoard()

	// A T against the left wall in the nub-right orientation. Rotating
	// counter-clockwise to spawn needs a one-column kick off the wall.
	p := Piece{Kind: KindT, Rot: 1, X: -1, Y: 10}
	if !b.CanPlace(p) {
		t.Fatal("setup piece does not fit")
	}

	got, ok := TryRotate(b, p, RotateCCW)
	if !ok {
		t.Fatal("wall rotation rejected")
	}
	if got.Rot != 0 {
		t.Fatalf("rot = %d, want 0", got.Rot)
	}
	if got.X != 0 {
		t.Errorf("kick moved piece to X=%d, want 0", got.X)
	}
}

func TestTryRotateFirstFitWins(t *testing.T) {
	b := NewBoard()

	// Block the identity candidate so the second table entry must be
	// used. T spawn rotating clockwise tries (0,0) then (-1,0). The cell
	// below the center belongs to the rotated shape but not the current
	// one.
	p := Piece{Kind: KindT, Rot: 0, X: 3, Y: 10}
	b.grid[p.Y+2][p.X+1] = KindZ

	got, ok := TryRotate(b, p, RotateCW)
	if !ok {
		t.Fatal("rotation rejected despite a legal kick")
	}
	if got.X != p.X-1 || got.Y != p.Y {
		t.Errorf("piece kicked to (%d,%d), want (%d,%d)", got.X, got.Y, p.X-1, p.Y)
	}
}

func TestTryRotateAllBlocked(t *testing.T) {
	b := NewBoard()

	// Fence the piece in completely except its current cells.
	p := Piece{Kind: KindT, Rot: 0, X: 3, Y: 10}
	own := make(map[Cell]bool)
	for _, c := range p.Cells() {
		own[c] = true
	}
	for y := p.Y - 3; y <= p.Y+5; y++ {
		for x := p.X - 3; x <= p.X+5; x++ {
			c := Cell{X: x, Y: y}
			if own[c] || x < 0 || x >= BoardWidth || y < 0 || y >= TotalRows {
				continue
			}
			b.grid[y][x] = KindJ
		}
	}

	got, ok := TryRotate(b, p, RotateCW)
	if ok {
		t.Fatal("fully blocked rotation reported success")
	}
	if got != p {
		t.Errorf("rejected rotation altered the piece: %+v", got)
	}
}

func TestIRotationUsesOwnTable(t *testing.T) {
	b := NewBoard()

	// An I flush against the left wall in the vertical nub-left
	// orientation occupies column X+1. Rotating clockwise to horizontal
	// at X=-1 would poke through the wall, so the I table's +1 kick fires.
	p := Piece{Kind: KindI, Rot: 3, X: -1, Y: 10}
	if !b.CanPlace(p) {
		t.Fatal("setup piece does not fit")
	}

	got, ok := TryRotate(b, p, RotateCW)
	if !ok {
		t.Fatal("wall rotation rejected")
	}
	if got.Rot != 0 {
		t.Fatalf("rot = %d, want 0", got.Rot)
	}
	if got.X == p.X {
		t.Error("I rotation at the wall did not kick")
	}
}
