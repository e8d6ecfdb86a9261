package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/averyhale/tetrion/internal/config"
	"github.com/averyhale/tetrion/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions using the
// bindings from Settings. Centralizing the mapping keeps it testable
// without a terminal.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper builds a mapper from the configured key bindings.
func NewKeyMapper(keys config.KeySettings) *KeyMapper {
	m := &KeyMapper{bindings: make(map[string]core.Action)}

	bind := func(names []string, a core.Action) {
		for _, n := range names {
			m.bindings[n] = a
		}
	}
	bind(keys.MoveLeft, core.ActionMoveLeft)
	bind(keys.MoveRight, core.ActionMoveRight)
	bind(keys.RotateCW, core.ActionRotateCW)
	bind(keys.RotateCCW, core.ActionRotateCCW)
	bind(keys.SoftDrop, core.ActionSoftDrop)
	bind(keys.HardDrop, core.ActionHardDrop)
	bind(keys.Hold, core.ActionHold)
	bind(keys.Pause, core.ActionPause)
	bind(keys.Restart, core.ActionRestart)
	bind(keys.Quit, core.ActionQuit)

	// ctrl+c always quits, whatever the user bound
	m.bindings["ctrl+c"] = core.ActionQuit

	return m
}

// MapKey translates a key message to an action. Returns the action (may be
// ActionNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame appends the key's action to the input frame, preserving
// arrival order. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Push(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Menu navigation is
// fixed rather than configurable.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
