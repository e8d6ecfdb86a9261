// Package registry holds the factory table for playable games. A game
// registers itself from an init() function so the platform layer can
// discover and instantiate it without a hardcoded import of its package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/averyhale/tetrion/internal/core"
)

// Game is the contract between an engine and the platform. Implementations
// are pure simulations: no terminal I/O, no Bubble Tea, no clocks. The
// platform owns input mapping, tick timing and presentation.
type Game interface {
	// ID returns the stable identifier used for CLI commands and score
	// storage (e.g. "tetris").
	ID() string

	// Title returns the human-readable name.
	Title() string

	// Reset initializes or restarts the simulation. Called once before the
	// first Step and again on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick, consuming the
	// frame's buffered inputs in arrival order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, level, lines and the over/paused flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-Reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under the given ID. It panics on a duplicate ID;
// registration happens at init time, so that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
