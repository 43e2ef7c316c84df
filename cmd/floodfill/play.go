package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/games/floodfill"
	"github.com/vovakirdan/tui-floodfill/internal/platform/tui"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
	"github.com/vovakirdan/tui-floodfill/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a puzzle",
	Long: `Start a new puzzle.

Controls:
  1-9          - Pick a replacement color
  Click        - Flood the clicked cell (clicking a swatch picks it)
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Flood the cell under the cursor
  U/Ctrl+Z     - Undo the last move
  R            - Restart the same puzzle
  Ctrl+S       - Save a screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 6x6 board
  normal - 9x9 board
  hard   - 12x12 board

Examples:
  floodfill play
  floodfill play --difficulty hard
  floodfill play --seed 42
  floodfill play --config ./my-floodfill.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := floodfill.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodfill list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Fail fast on a broken config instead of silently falling back in the game
	if flagConfig != "" {
		if _, err := config.LoadFloodFill(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set config path and difficulty for games before creation
	floodfill.SetConfigPath(flagConfig)
	floodfill.SetDifficultyPreset(preset)
	floodfill.SetLogger(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "game", gameID, "difficulty", string(preset), "seed", flagSeed)

	// Run the game
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
