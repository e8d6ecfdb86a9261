package engine

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Board      [TotalRows][BoardWidth]Kind
	ActiveKind Kind
	ActiveRot  int
	ActiveX    int
	ActiveY    int
	GhostY     int
	HoldKind   Kind
	HoldUsed   bool
	Next       []Kind
	Score      int
	Level      int
	Lines      int
	BackToBack bool
	Phase      LockPhase
	LockResets int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var grid [TotalRows][BoardWidth]Kind
	for y := 0; y < TotalRows; y++ {
		for x := 0; x < BoardWidth; x++ {
			grid[y][x] = g.board.At(x, y)
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Board:      grid,
		ActiveKind: g.active.Kind,
		ActiveRot:  g.active.Rot,
		ActiveX:    g.active.X,
		ActiveY:    g.active.Y,
		GhostY:     g.GhostPiece().Y,
		HoldKind:   g.holdKind,
		HoldUsed:   g.holdUsed,
		Next:       g.bag.Peek(g.tuning.NextPreview),
		Score:      g.score,
		Level:      g.level,
		Lines:      g.lines,
		BackToBack: g.scorer.BackToBack(),
		Phase:      g.lock.Phase(),
		LockResets: g.lock.Resets(),
		State:      state,
	}
}
