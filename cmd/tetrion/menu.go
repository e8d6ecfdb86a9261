package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/averyhale/tetrion/internal/config"
	"github.com/averyhale/tetrion/internal/core"
	"github.com/averyhale/tetrion/internal/platform/tui"
	"github.com/averyhale/tetrion/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in menu mode: pick the starting level, view high scores,
play runs back to back.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Adjust starting level
  Enter/Space  - Select
  Q            - Quit

Examples:
  tetrion menu
  tetrion menu --fps 30
  tetrion menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.RunSession(store, cfg, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
