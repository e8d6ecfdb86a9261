package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionRotateCW)
	f.Push(ActionMoveLeft)
	f.Push(ActionHardDrop)

	want := []Action{ActionRotateCW, ActionMoveLeft, ActionHardDrop}
	if len(f.Actions) != len(want) {
		t.Fatalf("buffered %d actions, want %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, want %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFramePushNoneIgnored(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionNone)
	if len(f.Actions) != 0 {
		t.Errorf("ActionNone should not be buffered, got %v", f.Actions)
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionPause)

	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true")
	}
	if f.Has(ActionHold) {
		t.Error("Has(ActionHold) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionMoveLeft)
	f.Push(ActionMoveRight)
	f.Clear()

	if len(f.Actions) != 0 {
		t.Errorf("Clear should empty the frame, got %v", f.Actions)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionSoftDrop)

	clone := f.Clone()
	f.Clear()

	if len(clone.Actions) != 1 || clone.Actions[0] != ActionSoftDrop {
		t.Errorf("Clone should be independent of the original, got %v", clone.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionMoveLeft, "MoveLeft"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionHardDrop, "HardDrop"},
		{ActionHold, "Hold"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}
