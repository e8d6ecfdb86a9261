package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averyhale/tetrion/internal/storage"
)

// NameEntry is the sub-model shown when a finished game qualifies for the
// high score table. It collects a three-letter name, arcade style.
type NameEntry struct {
	input     textinput.Model
	score     int
	level     int
	submitted bool
	skipped   bool
}

// NewNameEntry creates the name prompt for the given final score.
func NewNameEntry(score, level int) NameEntry {
	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = storage.NameLength
	ti.Width = storage.NameLength + 1
	ti.Focus()

	return NameEntry{
		input: ti,
		score: score,
		level: level,
	}
}

// Update handles key input for the prompt. Enter with a non-empty name
// submits; Esc skips saving.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if strings.TrimSpace(n.input.Value()) != "" {
				n.submitted = true
			}
			return n, nil
		case "esc":
			n.skipped = true
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Done reports whether the prompt has been resolved and, if a name was
// submitted, returns it normalized.
func (n NameEntry) Done() (name string, save, done bool) {
	switch {
	case n.submitted:
		return storage.NormalizeName(n.input.Value()), true, true
	case n.skipped:
		return "", false, true
	default:
		return "", false, false
	}
}

// View renders the prompt box.
func (n NameEntry) View(width, height int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("229")).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := fmt.Sprintf("%s\n\nScore %d  Level %d\n\nName: %s\n\n%s",
		titleStyle.Render("NEW HIGH SCORE!"),
		n.score, n.level,
		n.input.View(),
		hintStyle.Render("enter save · esc skip"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(content))
}
