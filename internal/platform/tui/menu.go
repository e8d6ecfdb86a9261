package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averyhale/tetrion/internal/config"
	"github.com/averyhale/tetrion/internal/core"
	"github.com/averyhale/tetrion/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

const (
	menuItemPlay = iota
	menuItemLevel
	menuItemScores
	menuItemQuit
	menuItemCount
)

// MenuModel is the Bubble Tea model for the main menu: start a run, pick
// the starting level, view the score table.
type MenuModel struct {
	cursor     int
	startLevel int
	width      int
	height     int
	store      *storage.Store
	cfg        core.RuntimeConfig
	settings   config.Settings
	keyMapper  *KeyMapper
	best       int

	choice   MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, settings config.Settings) MenuModel {
	m := MenuModel{
		startLevel: settings.Game.StartLevel,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		cfg:        cfg,
		settings:   settings,
		keyMapper:  NewKeyMapper(settings.Keys),
	}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuItemLevel && m.startLevel > 1 {
			m.startLevel--
		}

	case MenuActionRight:
		if m.cursor == menuItemLevel && m.startLevel < config.MaxStartLevel {
			m.startLevel++
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuItemPlay:
			m.choice = MenuChoicePlay
			return m, tea.Quit
		case menuItemLevel:
			// Nothing to confirm; adjusted with left/right
		case menuItemScores:
			m.choice = MenuChoiceScores
			return m, tea.Quit
		case menuItemQuit:
			m.choice = MenuChoiceQuit
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	normalStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	labels := [menuItemCount]string{
		menuItemPlay:   "Play",
		menuItemLevel:  fmt.Sprintf("Starting level  < %2d >", m.startLevel),
		menuItemScores: "High Scores",
		menuItemQuit:   "Quit",
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("T E T R I S"))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(hintStyle.Render(fmt.Sprintf("Best: %d", m.best)))
		b.WriteString("\n\n")
	}

	for i, label := range labels {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(normalStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("arrows move · enter select · q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Choice returns what the player picked, if anything.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// StartLevel returns the selected starting level.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// Config returns the runtime config, updated by any resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.cfg
}

// IsQuitting returns true if the user chose to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
