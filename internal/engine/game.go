package engine

import (
	"fmt"
	"math/rand"

	"github.com/averyhale/tetrion/internal/core"
	"github.com/averyhale/tetrion/internal/registry"
)

// Tuning bundles the engine-configurable rule parameters. The platform
// layer fills it from Settings; zero values fall back to the defaults the
// original rules use.
type Tuning struct {
	GravityMs     []int // fall interval per level, milliseconds
	LockDelayMs   int   // grounded grace period
	LockResetCap  int   // max lock-delay resets per piece
	NextPreview   int   // kinds shown in the next queue
	LinesPerLevel int   // line threshold for advancing a level
	GhostEnabled  bool
}

// DefaultTuning returns the classic rule parameters: 0.8s gravity shrinking
// by 50ms per level with a 50ms floor, 500ms lock delay with 15 resets,
// three preview pieces, a level every 10 lines.
func DefaultTuning() Tuning {
	gravity := make([]int, 15)
	for i := range gravity {
		gravity[i] = core.Max(50, 800-50*i)
	}
	return Tuning{
		GravityMs:     gravity,
		LockDelayMs:   500,
		LockResetCap:  15,
		NextPreview:   3,
		LinesPerLevel: LinesPerLevel,
		GhostEnabled:  true,
	}
}

// normalize fills in zero fields from the defaults.
func (t Tuning) normalize() Tuning {
	def := DefaultTuning()
	if len(t.GravityMs) == 0 {
		t.GravityMs = def.GravityMs
	}
	if t.LockDelayMs <= 0 {
		t.LockDelayMs = def.LockDelayMs
	}
	if t.LockResetCap <= 0 {
		t.LockResetCap = def.LockResetCap
	}
	if t.NextPreview <= 0 {
		t.NextPreview = def.NextPreview
	}
	if t.LinesPerLevel <= 0 {
		t.LinesPerLevel = def.LinesPerLevel
	}
	return t
}

// Package-level tuning applied at the next Reset (set from the CLI or
// Settings before game creation, like the other platform games do).
var activeTuning = DefaultTuning()

// SetTuning installs rule parameters for subsequently reset games.
func SetTuning(t Tuning) {
	activeTuning = t.normalize()
}

// Game is the authoritative game state machine. One Step consumes the
// frame's buffered inputs in arrival order, then applies at most one
// gravity advance and one lock-delay transition. The Game is the sole
// mutator of the board and the active piece.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	tuning Tuning
	tick   uint64

	board  *Board
	bag    *Bag
	active Piece
	lock   *LockTimer

	holdKind Kind
	holdUsed bool

	scorer              *Scorer
	score               int
	lines               int
	level               int
	lastMoveWasRotation bool
	lastSpin            SpinKind
	gravityTicker       int

	gameOver bool
	paused   bool
	tooSmall bool

	// Render layout, computed at Reset
	fieldX, fieldY int
}

// New creates a new game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	if cfg.TickRate < 1 {
		cfg.TickRate = 60
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tuning = activeTuning
	g.tick = 0

	g.board = NewBoard()
	g.bag = NewBag(g.rng)

	g.holdKind = KindNone
	g.holdUsed = false

	g.scorer = NewScorer(cfg.StartLevel, g.tuning.LinesPerLevel)
	g.score = 0
	g.lines = 0
	g.level = cfg.StartLevel
	g.lastMoveWasRotation = false
	g.lastSpin = SpinNone

	g.gameOver = false
	g.paused = false

	g.layout()
	g.spawn(g.bag.Next())
}

// layout computes render offsets and flags undersized screens.
func (g *Game) layout() {
	fieldW := BoardWidth*2 + 2 // two runes per cell plus border
	fieldH := VisibleRows + 2

	requiredW := fieldW + 2*sidePanelWidth
	requiredH := fieldH + 1
	g.tooSmall = g.cfg.ScreenW < requiredW || g.cfg.ScreenH < requiredH

	g.fieldX = (g.cfg.ScreenW - fieldW) / 2
	g.fieldY = core.Max(1, (g.cfg.ScreenH-fieldH)/2)
}

// spawn puts a fresh piece of the given kind into play. A blocked spawn
// ends the game.
func (g *Game) spawn(kind Kind) {
	g.active = NewPiece(kind)
	g.lock = g.newLockTimer()
	g.gravityTicker = 0
	g.lastMoveWasRotation = false
	if !g.board.CanPlace(g.active) {
		g.gameOver = true
	}
}

func (g *Game) newLockTimer() *LockTimer {
	return NewLockTimer(g.msToTicks(g.tuning.LockDelayMs), g.tuning.LockResetCap)
}

func (g *Game) msToTicks(ms int) int {
	return core.Max(1, ms*g.cfg.TickRate/1000)
}

// fallIntervalTicks returns the gravity interval for the current level.
// Levels beyond the table reuse its last entry.
func (g *Game) fallIntervalTicks() int {
	idx := core.Clamp(g.level-1, 0, len(g.tuning.GravityMs)-1)
	return g.msToTicks(g.tuning.GravityMs[idx])
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:       g.rng.Int63(),
			ScreenW:    g.cfg.ScreenW,
			ScreenH:    g.cfg.ScreenH,
			TickRate:   g.cfg.TickRate,
			StartLevel: g.cfg.StartLevel,
		})
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffered inputs apply in arrival order. While paused everything but
	// the pause toggle itself is rejected; the timers below stay frozen.
	locked := false
	for _, a := range input.Actions {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused || g.gameOver || locked {
			continue
		}
		locked = g.apply(a)
	}

	if g.paused || g.gameOver || locked {
		return core.StepResult{State: g.State()}
	}

	// At most one gravity advance per tick.
	g.gravityTicker++
	if g.gravityTicker >= g.fallIntervalTicks() {
		g.gravityTicker = 0
		if next := g.active.Moved(0, 1); g.board.CanPlace(next) {
			g.active = next
			g.lastMoveWasRotation = false
		}
	}

	// Lock-delay transition for this tick.
	if g.touchingGround() {
		g.lock.Ground()
		if g.lock.Tick() {
			g.lockActive()
		}
	} else {
		g.lock.Lift()
	}

	return core.StepResult{State: g.State()}
}

// apply executes a single input event. It returns true when the event
// locked the active piece, which ends input processing for the frame.
func (g *Game) apply(a core.Action) bool {
	switch a {
	case core.ActionMoveLeft:
		return g.shift(-1)
	case core.ActionMoveRight:
		return g.shift(1)
	case core.ActionRotateCW:
		return g.rotate(RotateCW)
	case core.ActionRotateCCW:
		return g.rotate(RotateCCW)
	case core.ActionSoftDrop:
		g.softDrop()
	case core.ActionHardDrop:
		g.hardDrop()
		return true
	case core.ActionHold:
		return g.holdSwap()
	}
	return false
}

// shift moves the piece one column sideways. Blocked moves are silently
// rejected with no state change.
func (g *Game) shift(dx int) bool {
	next := g.active.Moved(dx, 0)
	if !g.board.CanPlace(next) {
		return false
	}
	g.active = next
	return g.afterSuccessfulMove(false)
}

// rotate runs the kick resolver. Blocked rotations are silently rejected.
func (g *Game) rotate(dir RotationDir) bool {
	next, ok := TryRotate(g.board, g.active, dir)
	if !ok {
		return false
	}
	g.active = next
	return g.afterSuccessfulMove(true)
}

// afterSuccessfulMove updates the rotation flag and the lock timer after a
// move or rotation was adopted. A grounded piece gets a timer reset, which
// may instead force an immediate lock once the reset budget is spent.
// Returns true if the piece locked.
func (g *Game) afterSuccessfulMove(wasRotation bool) bool {
	g.lastMoveWasRotation = wasRotation
	if g.lock.Phase() == PhaseGrounded {
		g.lock.Reset()
		if g.lock.Phase() == PhaseLocked {
			g.lockActive()
			return true
		}
	}
	g.syncGround()
	return false
}

// syncGround realigns the lock phase with the piece's current support.
func (g *Game) syncGround() {
	if g.touchingGround() {
		g.lock.Ground()
	} else {
		g.lock.Lift()
	}
}

func (g *Game) touchingGround() bool {
	return !g.board.CanPlace(g.active.Moved(0, 1))
}

// softDrop moves the piece down one row for a small bonus. On the ground it
// arms the lock timer instead.
func (g *Game) softDrop() {
	next := g.active.Moved(0, 1)
	if !g.board.CanPlace(next) {
		g.lock.Ground()
		return
	}
	g.active = next
	g.score += SoftDropBonus
	g.lastMoveWasRotation = false
	g.syncGround()
}

// hardDrop sends the piece straight to the floor and locks it, bypassing
// the lock delay.
func (g *Game) hardDrop() {
	dist := 0
	for {
		next := g.active.Moved(0, 1)
		if !g.board.CanPlace(next) {
			break
		}
		g.active = next
		dist++
	}
	if dist > 0 {
		g.score += dist * HardDropBonus
		g.lastMoveWasRotation = false
	}
	g.lock.ForceLock()
	g.lockActive()
}

// holdSwap stashes the active piece and brings out the held one (or the
// next from the bag when the slot is empty). Allowed once per piece
// lifetime. Returns true when the incoming piece cannot spawn and the game
// ends.
func (g *Game) holdSwap() bool {
	if g.holdUsed {
		return false
	}
	stashed := g.active.Kind
	if g.holdKind == KindNone {
		g.spawn(g.bag.Next())
	} else {
		g.spawn(g.holdKind)
	}
	g.holdKind = stashed
	g.holdUsed = true
	return g.gameOver
}

// lockActive runs the full lock pipeline: spin classification, board
// write, line clears, scoring, level-up, then the next spawn.
func (g *Game) lockActive() {
	result := ResolveLock(g.board, g.active, g.lastMoveWasRotation)
	cleared := len(result.Lines)

	g.score += g.scorer.Score(cleared, result.Spin, g.level)
	g.lines += cleared
	g.level = g.scorer.Level(g.lines)
	g.lastSpin = result.Spin

	g.holdUsed = false
	g.spawn(g.bag.Next())
}

// GhostPiece projects the active piece straight down to its landing
// position without mutating any state.
func (g *Game) GhostPiece() Piece {
	ghost := g.active
	for {
		next := ghost.Moved(0, 1)
		if !g.board.CanPlace(next) {
			return ghost
		}
		ghost = next
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a short description of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d piece=%s rot=%d pos=(%d,%d) phase=%s score=%d level=%d lines=%d",
		g.tick, g.active.Kind, g.active.Rot, g.active.X, g.active.Y,
		g.lock.Phase(), g.score, g.level, g.lines)
}
