// floodfill is a flood-fill color puzzle for the terminal.
//
// Usage:
//
//	floodfill play [game]       - Play a puzzle (default: floodfill)
//	floodfill generate          - Print a puzzle as palette symbols
//	floodfill scores [game]     - Show high scores
//	floodfill list              - List available games
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.floodfill/scores.db)
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-floodfill/internal/games/floodfill"
)

var (
	// Global flags
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodfill",
	Short: "Flood Fill - a color flooding puzzle in your terminal",
	Long: `Flood Fill is a puzzle on a square grid of colored cells.

Pick a color, then press a cell: the region of same-colored cells
around it takes the new color. Every move costs points, and small
floods cost more. Flood the whole board into one color to win.

Available commands:
  play      - Play a puzzle
  generate  - Print a puzzle without playing it
  scores    - View high scores
  list      - Show all available games

Examples:
  floodfill play
  floodfill play --difficulty hard --seed 42
  floodfill generate --seed 42
  floodfill scores -i`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodfill/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
}
