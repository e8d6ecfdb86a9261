package engine

// LockPhase is the lifecycle phase of the active piece with respect to
// locking.
type LockPhase int

const (
	// PhaseFalling means the piece has open space below it; no lock timer
	// runs.
	PhaseFalling LockPhase = iota
	// PhaseGrounded means the piece rests on a surface and the lock timer
	// is counting down.
	PhaseGrounded
	// PhaseLocked is terminal: the piece must be written to the board.
	PhaseLocked
)

// String returns a readable phase name.
func (p LockPhase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseGrounded:
		return "grounded"
	case PhaseLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// LockTimer tracks the grounded grace period for one active piece. Each
// successful move or rotation while grounded restarts the countdown, but
// only up to ResetCap times; after that the piece locks on the next
// grounded tick no matter how much time remained. A new timer is armed for
// every spawned piece.
type LockTimer struct {
	phase     LockPhase
	delay     int // full countdown, in ticks
	remaining int
	resets    int
	resetCap  int
}

// NewLockTimer creates a timer with the given delay (in ticks) and reset
// cap.
func NewLockTimer(delayTicks, resetCap int) *LockTimer {
	return &LockTimer{
		phase:    PhaseFalling,
		delay:    delayTicks,
		resetCap: resetCap,
	}
}

// Phase returns the current lifecycle phase.
func (t *LockTimer) Phase() LockPhase {
	return t.phase
}

// Resets returns how many grounded resets the piece has consumed.
func (t *LockTimer) Resets() int {
	return t.resets
}

// Remaining returns the ticks left before a grounded piece locks.
func (t *LockTimer) Remaining() int {
	return t.remaining
}

// Ground transitions the timer to the grounded phase, arming the countdown
// if it was not already running.
func (t *LockTimer) Ground() {
	if t.phase == PhaseGrounded || t.phase == PhaseLocked {
		return
	}
	t.phase = PhaseGrounded
	t.remaining = t.delay
}

// Lift returns the timer to the falling phase after the piece regains open
// space below it. The reset count is deliberately kept: drifting off a
// ledge and back does not grant a fresh budget.
func (t *LockTimer) Lift() {
	if t.phase == PhaseLocked {
		return
	}
	t.phase = PhaseFalling
	t.remaining = 0
}

// Reset restarts the countdown after a successful move or rotation while
// grounded. When the reset budget is spent the piece locks immediately
// instead.
func (t *LockTimer) Reset() {
	if t.phase != PhaseGrounded {
		return
	}
	if t.resets >= t.resetCap {
		t.phase = PhaseLocked
		return
	}
	t.resets++
	t.remaining = t.delay
}

// Tick advances the countdown by one tick while grounded. It returns true
// once the piece has reached the locked phase.
func (t *LockTimer) Tick() bool {
	switch t.phase {
	case PhaseGrounded:
		t.remaining--
		if t.remaining <= 0 {
			t.phase = PhaseLocked
		}
	case PhaseLocked:
		return true
	}
	return t.phase == PhaseLocked
}

// ForceLock jumps straight to the locked phase, bypassing the countdown.
// Used by hard drop.
func (t *LockTimer) ForceLock() {
	t.phase = PhaseLocked
}
