package floodfill

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
)

// GameID is the registry and score-table identifier of the puzzle.
const GameID = "floodfill"

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger games created afterwards write to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Controller to the game registry: it maps input frames
// to controller calls and draws the board into a core.Screen.
type Game struct {
	cfg    config.FloodFillConfig
	ctrl   *Controller
	logger *log.Logger

	// Last state pushed by the controller
	board Grid
	score float64

	cursor  Coordinate
	lastErr error

	// Layout
	screenW  int
	screenH  int
	cellW    int
	cellH    int
	boardR   core.Rect
	swatches []core.Rect
	tooSmall bool
}

// New creates a flood-fill game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// OptionsFromConfig converts a loaded configuration into controller options.
func OptionsFromConfig(cfg config.FloodFillConfig) (Options, error) {
	palette, err := PaletteFromConfig(cfg.Palette)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Palette:      palette,
		Size:         cfg.Grid.CellsPerAxis,
		MaximumScore: cfg.Scoring.MaximumWeightedScore,
		MaxMoves:     cfg.Scoring.MaxMoves,
		InitialColor: cfg.InitialColor,
		CellWidth:    cfg.Display.CellWidth,
		CellHeight:   cfg.Display.CellHeight,
	}, nil
}

// PaletteFromConfig converts configured palette entries to a Palette.
func PaletteFromConfig(entries []config.PaletteEntry) (Palette, error) {
	if len(entries) == 0 {
		return DefaultPalette(), nil
	}
	p := make(Palette, 0, len(entries))
	for _, e := range entries {
		sym := []rune(e.Symbol)
		if len(sym) != 1 || len(e.RGB) != 3 {
			return nil, fmt.Errorf("floodfill: malformed palette entry %q", e.Name)
		}
		p = append(p, NamedColor{
			Name:   e.Name,
			Symbol: sym[0],
			Color:  Color{R: uint8(e.RGB[0]), G: uint8(e.RGB[1]), B: uint8(e.RGB[2])},
		})
	}
	return p, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flood Fill"
}

// Reset loads the configuration and starts a brand new puzzle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.logger = logger

	cfg, err := config.LoadFloodFill(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultFloodFillConfig()
	}
	config.ApplyFloodFillPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		g.logger.Warn("using default palette", "err", err)
		opts.Palette = DefaultPalette()
		opts.InitialColor = ""
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Logger = g.logger
	opts.Renderer = g

	ctrl, err := NewController(opts)
	if err != nil {
		// Only reachable with a broken palette; the defaults always build
		g.logger.Error("cannot create controller", "err", err)
		ctrl, _ = NewController(Options{
			Palette:  DefaultPalette(),
			Size:     cfg.Grid.CellsPerAxis,
			Rand:     opts.Rand,
			Logger:   g.logger,
			Renderer: g,
		})
	}
	g.ctrl = ctrl
	g.lastErr = nil

	g.Resize(rc.ScreenW, rc.ScreenH)
	//nolint:errcheck // a generated grid always matches the size
	g.ctrl.Start(nil)
	g.cursor = Coordinate{Row: ctrl.Size() / 2, Column: ctrl.Size() / 2}

	g.logger.Info("new puzzle", "size", ctrl.Size(), "seed", seed, "colors", len(ctrl.Palette()))
}

// Resize lays the board out for a new screen size without touching the puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.ctrl == nil {
		return
	}
	g.layout()
}

// RenderGrid implements Renderer.
func (g *Game) RenderGrid(grid Grid) {
	g.board = grid
}

// RenderScore implements Renderer.
func (g *Game) RenderScore(score float64) {
	g.score = score
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{}
	}

	changed := false
	switch {
	case in.Has(core.ActionRestart):
		g.ctrl.HandleRestart()
		g.lastErr = nil
		changed = true

	case in.Has(core.ActionUndo):
		changed = g.ctrl.HandleUndo()

	case g.tooSmall:
		// Nothing on screen to aim at

	default:
		changed = g.handlePlay(in)
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// handlePlay processes the inputs that only make sense while the board is visible.
func (g *Game) handlePlay(in core.InputFrame) bool {
	if slot, ok := in.Slot(); ok {
		return g.selectSlot(slot)
	}

	if p, ok := in.Click(); ok {
		return g.click(p)
	}

	moved := g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		if g.ctrl.Solved() {
			return moved
		}
		return g.apply(g.ctrl.HandleCellAt(g.cursor)) || moved
	}
	return moved
}

// selectSlot picks the palette color at a 1-based slot.
func (g *Game) selectSlot(slot int) bool {
	palette := g.ctrl.Palette()
	if slot > len(palette) {
		g.logger.Debug("palette slot out of range", "slot", slot)
		return false
	}
	name := palette[slot-1].Name
	if g.ctrl.Color().Name == name {
		return false
	}
	return g.apply(g.ctrl.HandleColorSelect(name))
}

// click routes a pointer press to a swatch or the board.
func (g *Game) click(p core.Point) bool {
	for i, r := range g.swatches {
		if r.Contains(p.X, p.Y) {
			return g.selectSlot(i + 1)
		}
	}

	if g.ctrl.Solved() {
		return false
	}

	x, y := g.boardR.Local(p.X, p.Y)
	if !g.apply(g.ctrl.HandleCellClick(x, y)) {
		return false
	}
	g.cursor = ToCoordinate(x, y, g.cellW, g.cellH)
	return true
}

// moveCursor moves the keyboard cursor, staying on the board.
func (g *Game) moveCursor(in core.InputFrame) bool {
	prev := g.cursor
	last := g.ctrl.Size() - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Column--
	case in.Has(core.ActionRight):
		g.cursor.Column++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, last)
	g.cursor.Column = core.Clamp(g.cursor.Column, 0, last)
	return g.cursor != prev
}

// apply records the outcome of a controller call and reports whether it succeeded.
func (g *Game) apply(err error) bool {
	g.lastErr = err
	if err == nil {
		return true
	}
	if errors.Is(err, ErrInvalidCoordinate) || errors.Is(err, ErrUnknownColor) {
		g.logger.Debug("input ignored", "err", err)
	} else {
		g.logger.Warn("move failed", "err", err)
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(math.Round(g.score)),
		Moves:    g.ctrl.Moves(),
		GameOver: g.ctrl.Solved(),
	}
}

// Controller returns the controller driving the current puzzle.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
