package floodfill

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidCoordinate is returned for a press that lands outside the board.
	ErrInvalidCoordinate = errors.New("floodfill: coordinate outside grid")

	// ErrUnknownColor is returned when a color name is not in the palette.
	ErrUnknownColor = errors.New("floodfill: unknown color")

	// ErrGridSize is returned when a starting grid does not match the configured size.
	ErrGridSize = errors.New("floodfill: grid size mismatch")
)

// Renderer receives the state a presentation layer needs to draw.
type Renderer interface {
	RenderGrid(g Grid)
	RenderScore(score float64)
}

type nopRenderer struct{}

func (nopRenderer) RenderGrid(Grid)     {}
func (nopRenderer) RenderScore(float64) {}

// Options configures a Controller.
type Options struct {
	Palette      Palette
	Size         int     // cells per axis
	MaximumScore float64 // starting score
	MaxMoves     int     // scoring divisor
	InitialColor string  // palette name selected at start and on restart
	CellWidth    int     // pixels (screen columns) per cell
	CellHeight   int     // pixels (screen rows) per cell
	Rand         *rand.Rand
	Logger       *log.Logger
	Renderer     Renderer
}

// Controller runs one puzzle: it turns player input into fills,
// score changes and history entries, and pushes the results to a Renderer.
// It is not safe for concurrent use.
type Controller struct {
	palette  Palette
	size     int
	cellW    int
	cellH    int
	rng      *rand.Rand
	logger   *log.Logger
	renderer Renderer
	scorer   *Scorer
	history  *History
	initial  NamedColor
	color    NamedColor
	area     int
}

// NewController validates opts and returns a controller ready for Start.
func NewController(opts Options) (*Controller, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("floodfill: grid size must be positive, got %d", opts.Size)
	}
	if len(opts.Palette) == 0 {
		return nil, errors.New("floodfill: palette is empty")
	}

	palette := opts.Palette
	initial := palette[0]
	if opts.InitialColor != "" {
		nc, ok := palette.Lookup(opts.InitialColor)
		if !ok {
			return nil, fmt.Errorf("%w: initial color %q", ErrUnknownColor, opts.InitialColor)
		}
		initial = nc
	}

	c := &Controller{
		palette:  palette,
		size:     opts.Size,
		cellW:    max(opts.CellWidth, 1),
		cellH:    max(opts.CellHeight, 1),
		rng:      opts.Rand,
		logger:   opts.Logger,
		renderer: opts.Renderer,
		scorer:   NewScorer(opts.MaximumScore, opts.MaxMoves),
		history:  NewHistory(),
		initial:  initial,
		color:    initial,
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	return c, nil
}

// Start begins a run on initial, or on a freshly generated grid when initial is nil.
func (c *Controller) Start(initial *Grid) error {
	var g Grid
	if initial == nil {
		g = Generate(c.rng, c.palette, c.size)
	} else {
		if initial.Size != c.size || len(initial.Cells) != c.size*c.size {
			return fmt.Errorf("%w: got %d, want %d", ErrGridSize, initial.Size, c.size)
		}
		g = initial.Clone()
	}

	c.scorer.Reset()
	c.history.RecordInitial(g)

	c.logger.Debug("puzzle started", "size", c.size, "generated", initial == nil)
	c.render(g)
	return nil
}

// SetCellSize changes how pixel positions map to cells.
func (c *Controller) SetCellSize(w, h int) {
	c.cellW = max(w, 1)
	c.cellH = max(h, 1)
}

// HandleCellClick floods from the cell under pixel position (x, y),
// measured from the top-left corner of the board.
func (c *Controller) HandleCellClick(x, y int) error {
	coord := ToCoordinate(x, y, c.cellW, c.cellH)
	if x < 0 || y < 0 || !c.history.Current().InBounds(coord) {
		return fmt.Errorf("%w: pixel (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	return c.HandleCellAt(coord)
}

// HandleCellAt floods from the given cell with the selected color.
// A move is recorded even when nothing changes color.
func (c *Controller) HandleCellAt(coord Coordinate) error {
	current := c.history.Current()
	if !current.InBounds(coord) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, coord)
	}

	next := current.Clone()
	c.history.RecordMove(current, c.scorer.Score(), c.color)

	target := next.At(coord)
	c.area = Fill(next, coord, target, c.color.Color)
	score := c.scorer.ApplyMove(c.area)

	c.history.PushGridState(next)

	c.logger.Debug("flood",
		"cell", coord.String(),
		"color", c.color.Name,
		"area", c.area,
		"score", score,
	)
	c.render(next)
	return nil
}

// HandleColorSelect makes name the replacement color.
// The selection is itself a checkpoint: undo restores the previous color.
func (c *Controller) HandleColorSelect(name string) error {
	nc, ok := c.palette.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	dup := c.history.Current().Clone()
	c.history.PushGridState(dup)
	c.history.RecordMove(dup, c.scorer.Score(), c.color)

	c.logger.Debug("color selected", "from", c.color.Name, "to", nc.Name)
	c.color = nc
	return nil
}

// HandleRestart replays the first grid of the run from a full score.
func (c *Controller) HandleRestart() {
	c.scorer.Reset()
	c.history.Reset()
	c.area = 0
	c.color = c.initial

	initial := c.history.Initial()
	c.logger.Debug("restart")
	//nolint:errcheck // the initial grid always has the configured size
	c.Start(&initial)
}

// HandleUndo rolls back the latest move. It returns false when there is nothing to undo.
func (c *Controller) HandleUndo() bool {
	rec, ok := c.history.Undo()
	if !ok {
		return false
	}

	c.scorer.Restore(rec.Score)
	c.color = rec.Color

	c.logger.Debug("undo", "score", rec.Score, "color", rec.Color.Name, "moves", c.history.Moves())
	c.render(rec.Grid)
	return true
}

func (c *Controller) render(g Grid) {
	c.renderer.RenderGrid(g)
	c.renderer.RenderScore(c.scorer.Score())
}

// Grid returns the current board. Callers must not modify it.
func (c *Controller) Grid() Grid { return c.history.Current() }

// InitialGrid returns the board the run started from.
func (c *Controller) InitialGrid() Grid { return c.history.Initial() }

// Score returns the current score.
func (c *Controller) Score() float64 { return c.scorer.Score() }

// MaximumScore returns the score every run starts with.
func (c *Controller) MaximumScore() float64 { return c.scorer.Max() }

// Color returns the selected replacement color.
func (c *Controller) Color() NamedColor { return c.color }

// Area returns the number of cells the latest flood recolored.
func (c *Controller) Area() int { return c.area }

// Moves returns the number of undoable moves.
func (c *Controller) Moves() int { return c.history.Moves() }

// States returns the number of stored board states.
func (c *Controller) States() int { return c.history.Grids() }

// Palette returns the palette the puzzle uses.
func (c *Controller) Palette() Palette { return c.palette }

// Size returns the number of cells per axis.
func (c *Controller) Size() int { return c.size }

// Solved reports whether the whole board is a single color.
func (c *Controller) Solved() bool { return c.history.Current().IsUniform() }
