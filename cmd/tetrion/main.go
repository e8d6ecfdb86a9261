// tetrion is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetrion play             - Start a game directly
//	tetrion menu             - Start with the interactive menu
//	tetrion serve            - Start SSH server for remote play
//	tetrion scores           - Show the high score table
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.tetrion/scores.db)
//	--settings <path>  - Use an explicit settings file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/averyhale/tetrion/internal/engine"
	"github.com/averyhale/tetrion/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSettings string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrion",
	Short: "Tetrion - falling-block puzzle in your terminal",
	Long: `Tetrion is a terminal falling-block puzzle game with hold, ghost
piece, wall kicks and a persistent high score table.

Available commands:
  play     - Start a game directly
  menu     - Interactive menu with level select and high scores
  serve    - Start SSH server for remote play
  scores   - Print the high score table

Examples:
  tetrion play
  tetrion play --level 5
  tetrion menu
  tetrion serve --ssh :2222
  tetrion scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
