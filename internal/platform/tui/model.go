package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/averyhale/tetrion/internal/config"
	"github.com/averyhale/tetrion/internal/core"
	"github.com/averyhale/tetrion/internal/engine"
	"github.com/averyhale/tetrion/internal/registry"
	"github.com/averyhale/tetrion/internal/storage"
)

// GameModel is the Bubble Tea model for a running game. It owns the tick
// loop, forwards mapped input to the simulation, and takes the player
// through name entry when a finished game makes the high score table.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	cfg        core.RuntimeConfig
	settings   config.Settings
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	nameEntry    *NameEntry
	scoreHandled bool
	quitting     bool
	backToMenu   bool
}

// TuningFromSettings converts the user settings into engine rule
// parameters.
func TuningFromSettings(s config.Settings) engine.Tuning {
	return engine.Tuning{
		GravityMs:     s.Timing.GravityMs,
		LockDelayMs:   s.Timing.LockDelayMs,
		LockResetCap:  s.Timing.LockResetCap,
		NextPreview:   s.Game.NextPreview,
		LinesPerLevel: engine.LinesPerLevel,
		GhostEnabled:  s.Game.Ghost,
	}
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, settings config.Settings) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.StartLevel == 0 {
		cfg.StartLevel = settings.Game.StartLevel
	}
	engine.SetTuning(TuningFromSettings(settings))

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		cfg:        cfg,
		settings:   settings,
		keyMapper:  NewKeyMapper(settings.Keys),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.cfg)
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.nameEntry != nil {
		return m.updateNameEntry(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// updateNameEntry routes messages to the high score prompt.
func (m GameModel) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.cfg.TickRate)
	}

	entry, cmd := m.nameEntry.Update(msg)
	m.nameEntry = &entry

	if name, save, done := entry.Done(); done {
		if save && m.store != nil {
			m.persistScore(name, entry.score, entry.level)
		}
		m.nameEntry = nil
	}
	return m, cmd
}

// persistScore writes a qualifying score. A failed write is logged and the
// session carries on; the score stays visible on screen either way.
func (m GameModel) persistScore(name string, score, level int) {
	if _, err := m.store.SaveHighScore(name, score, level); err != nil {
		log.Warn("could not save high score", "name", name, "score", score, "error", err)
	}
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// b or esc leaves for the menu once the run is over
	if m.gameState.GameOver && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.cfg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.cfg.Seed = time.Now().UnixNano()
		m.game.Reset(m.cfg)
		m.gameState = m.game.State()
		m.scoreHandled = false
		m.inputFrame.Clear()
		return m, tickCmd(m.cfg.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// First tick after game over decides whether the run enters the table
	if m.gameState.GameOver && !m.scoreHandled {
		m.scoreHandled = true
		if m.store != nil {
			if ok, err := m.store.Qualifies(m.gameState.Score); err == nil && ok {
				entry := NewNameEntry(m.gameState.Score, m.gameState.Level)
				m.nameEntry = &entry
			}
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.nameEntry != nil {
		return m.nameEntry.View(m.cfg.ScreenW, m.cfg.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game session without the surrounding menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, settings config.Settings) error {
	model := NewGameModel(game, store, cfg, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
