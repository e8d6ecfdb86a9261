package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw keys to actions; games only see intents.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Shift the active piece one column left
	ActionMoveRight        // Shift the active piece one column right
	ActionRotateCW         // Rotate clockwise
	ActionRotateCCW        // Rotate counter-clockwise
	ActionSoftDrop         // Move down one row, small score bonus
	ActionHardDrop         // Drop to the floor and lock immediately
	ActionHold             // Swap with the hold slot
	ActionPause            // Pause/unpause
	ActionRestart          // Restart after game over
	ActionQuit             // Exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions buffered for one simulation tick, in arrival
// order. Ordering matters: a rotate followed by a hard drop is not the same
// piece placement as the reverse.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to this frame.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was buffered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
