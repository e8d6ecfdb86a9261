package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/averyhale/tetrion/internal/config"
	"github.com/averyhale/tetrion/internal/core"
	"github.com/averyhale/tetrion/internal/platform/tui"
	"github.com/averyhale/tetrion/internal/registry"
	"github.com/averyhale/tetrion/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start playing immediately, skipping the menu.

Controls (defaults, override in settings):
  Left/Right   - Move
  Up/X         - Rotate clockwise
  Z            - Rotate counter-clockwise
  Down         - Soft drop
  Space        - Hard drop
  C            - Hold
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  tetrion play
  tetrion play --level 5
  tetrion play --seed 42 --fps 30
  tetrion play --settings ./my-settings.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (default from settings)")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagSettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		StartLevel: flagLevel,
	}
	if cfg.StartLevel == 0 {
		cfg.StartLevel = settings.Game.StartLevel
	}
	if cfg.StartLevel < 1 || cfg.StartLevel > config.MaxStartLevel {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", config.MaxStartLevel)
		os.Exit(1)
	}

	game, err := registry.Create("tetris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
