package floodfill

import (
	"errors"
	"math/rand"
	"testing"
)

type recordingRenderer struct {
	grids  []Grid
	scores []float64
}

func (r *recordingRenderer) RenderGrid(g Grid)         { r.grids = append(r.grids, g.Clone()) }
func (r *recordingRenderer) RenderScore(score float64) { r.scores = append(r.scores, score) }

func newTestController(t *testing.T, size int) (*Controller, *recordingRenderer) {
	t.Helper()
	r := &recordingRenderer{}
	c, err := NewController(Options{
		Palette:      DefaultPalette(),
		Size:         size,
		MaximumScore: 1000,
		MaxMoves:     8,
		InitialColor: "white",
		CellWidth:    40,
		CellHeight:   40,
		Rand:         rand.New(rand.NewSource(1)),
		Renderer:     r,
	})
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	return c, r
}

// blackCornerGrid is a white 9x9 board with a 2x2 black block at the top left.
func blackCornerGrid() Grid {
	g := NewGrid(9, white)
	for _, c := range []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		g.Set(c, black)
	}
	return g
}

func TestControllerStartGenerates(t *testing.T) {
	c, r := newTestController(t, 9)
	if err := c.Start(nil); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if c.Grid().Size != 9 || len(c.Grid().Cells) != 81 {
		t.Errorf("generated grid has size %d with %d cells", c.Grid().Size, len(c.Grid().Cells))
	}
	if c.Score() != 1000 {
		t.Errorf("Score() = %v, want 1000", c.Score())
	}
	if len(r.grids) != 1 || len(r.scores) != 1 {
		t.Errorf("Start() rendered %d grids and %d scores, want 1 each", len(r.grids), len(r.scores))
	}
	if c.Color().Name != "white" {
		t.Errorf("initial color = %q, want white", c.Color().Name)
	}
}

func TestControllerStartSizeMismatch(t *testing.T) {
	c, _ := newTestController(t, 9)
	g := NewGrid(4, white)
	if err := c.Start(&g); !errors.Is(err, ErrGridSize) {
		t.Errorf("Start() error = %v, want ErrGridSize", err)
	}
}

func TestControllerFloodScenario(t *testing.T) {
	c, r := newTestController(t, 9)
	initial := blackCornerGrid()
	if err := c.Start(&initial); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if err := c.HandleColorSelect("red"); err != nil {
		t.Fatalf("HandleColorSelect() failed: %v", err)
	}
	if err := c.HandleCellClick(0, 0); err != nil {
		t.Fatalf("HandleCellClick() failed: %v", err)
	}

	if c.Area() != 4 {
		t.Errorf("Area() = %d, want 4", c.Area())
	}
	if c.Score() != 993 {
		t.Errorf("Score() = %v, want 993", c.Score())
	}
	for _, coord := range []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if c.Grid().At(coord) != red {
			t.Errorf("cell %v = %v, want red", coord, c.Grid().At(coord))
		}
	}
	if last := r.scores[len(r.scores)-1]; last != 993 {
		t.Errorf("last rendered score = %v, want 993", last)
	}
	if !c.InitialGrid().Equal(initial) {
		t.Error("flooding modified the initial grid")
	}
}

func TestControllerSameColorClick(t *testing.T) {
	c, _ := newTestController(t, 9)
	initial := blackCornerGrid()
	c.Start(&initial)

	// White on white: nothing changes, but a checkpoint is still taken
	if err := c.HandleCellClick(200, 200); err != nil {
		t.Fatalf("HandleCellClick() failed: %v", err)
	}

	if c.Area() != 0 {
		t.Errorf("Area() = %d, want 0", c.Area())
	}
	if c.Score() != 1000 {
		t.Errorf("Score() = %v, want 1000", c.Score())
	}
	if !c.Grid().Equal(initial) {
		t.Error("same-color click changed the grid")
	}
	if c.Moves() != 1 || c.States() != 2 {
		t.Errorf("moves=%d states=%d, want 1 and 2", c.Moves(), c.States())
	}
}

func TestControllerInvalidClick(t *testing.T) {
	c, _ := newTestController(t, 9)
	c.Start(nil)
	before := c.Grid().Clone()

	for _, p := range [][2]int{{-1, 0}, {0, -5}, {360, 0}, {0, 400}} {
		err := c.HandleCellClick(p[0], p[1])
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("HandleCellClick(%d, %d) error = %v, want ErrInvalidCoordinate", p[0], p[1], err)
		}
	}
	if c.Moves() != 0 || !c.Grid().Equal(before) || c.Score() != 1000 {
		t.Error("invalid clicks changed the game state")
	}
}

func TestControllerUnknownColor(t *testing.T) {
	c, _ := newTestController(t, 9)
	c.Start(nil)

	if err := c.HandleColorSelect("purple"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("HandleColorSelect(purple) error = %v, want ErrUnknownColor", err)
	}
	if c.Color().Name != "white" || c.Moves() != 0 {
		t.Error("unknown color changed the game state")
	}
}

func TestControllerUndo(t *testing.T) {
	c, r := newTestController(t, 9)
	initial := blackCornerGrid()
	c.Start(&initial)

	c.HandleColorSelect("red")
	afterSelect := c.Grid().Clone()
	c.HandleCellAt(Coordinate{0, 0})
	afterFlood := c.Grid().Clone()
	c.HandleColorSelect("green")
	c.HandleCellAt(Coordinate{5, 5})

	if c.Moves() != 4 || c.States() != 5 {
		t.Fatalf("moves=%d states=%d, want 4 and 5", c.Moves(), c.States())
	}

	// Undo the green flood
	if !c.HandleUndo() {
		t.Fatal("HandleUndo() returned false")
	}
	if !c.Grid().Equal(afterFlood) {
		t.Error("first undo did not restore the board before the green flood")
	}
	if c.Color().Name != "green" {
		t.Errorf("color after first undo = %q, want green", c.Color().Name)
	}
	if !r.grids[len(r.grids)-1].Equal(afterFlood) {
		t.Error("undo did not render the restored grid")
	}

	// Undo the green selection
	c.HandleUndo()
	if c.Color().Name != "red" {
		t.Errorf("color after undoing selection = %q, want red", c.Color().Name)
	}

	// Undo the red flood
	c.HandleUndo()
	if !c.Grid().Equal(afterSelect) || c.Score() != 1000 {
		t.Error("undoing the red flood did not restore grid and score")
	}

	// Undo the red selection
	c.HandleUndo()
	if c.Color().Name != "white" || !c.Grid().Equal(initial) {
		t.Error("undo back to start did not restore the initial state")
	}
	if c.States() != 1 {
		t.Errorf("States() = %d, want 1", c.States())
	}

	// Nothing left
	if c.HandleUndo() {
		t.Error("HandleUndo() on empty history returned true")
	}
	if !c.Grid().Equal(initial) || c.Score() != 1000 {
		t.Error("empty undo changed the game state")
	}
}

func TestControllerRestart(t *testing.T) {
	c, _ := newTestController(t, 9)
	c.Start(nil)
	initial := c.Grid().Clone()

	c.HandleColorSelect("black")
	c.HandleCellAt(Coordinate{4, 4})
	c.HandleColorSelect("blue")
	c.HandleCellAt(Coordinate{0, 0})

	c.HandleRestart()

	if !c.Grid().Equal(initial) {
		t.Error("restart did not restore the initial grid")
	}
	if c.Score() != 1000 {
		t.Errorf("Score() = %v after restart, want 1000", c.Score())
	}
	if c.Moves() != 0 || c.States() != 1 {
		t.Errorf("moves=%d states=%d after restart, want 0 and 1", c.Moves(), c.States())
	}
	if c.Color().Name != "white" {
		t.Errorf("color after restart = %q, want white", c.Color().Name)
	}
	if c.Area() != 0 {
		t.Errorf("Area() = %d after restart, want 0", c.Area())
	}
}

func TestControllerSolved(t *testing.T) {
	c, _ := newTestController(t, 3)
	g := NewGrid(3, white)
	g.Set(Coordinate{1, 1}, black)
	c.Start(&g)

	if c.Solved() {
		t.Fatal("two-color board reported solved")
	}
	c.HandleCellAt(Coordinate{1, 1})
	if !c.Solved() {
		t.Error("uniform board not reported solved")
	}
}

func TestControllerHistoryInvariant(t *testing.T) {
	c, _ := newTestController(t, 9)
	c.Start(nil)
	rng := rand.New(rand.NewSource(99))
	names := DefaultPalette().Names()

	for i := 0; i < 50; i++ {
		switch rng.Intn(3) {
		case 0:
			c.HandleColorSelect(names[rng.Intn(len(names))])
		case 1:
			c.HandleCellAt(Coordinate{Row: rng.Intn(9), Column: rng.Intn(9)})
		case 2:
			c.HandleUndo()
		}
		if c.States() != c.Moves()+1 {
			t.Fatalf("step %d: states=%d moves=%d", i, c.States(), c.Moves())
		}
		if c.Score() < 0 || c.Score() > 1000 {
			t.Fatalf("step %d: score %v out of range", i, c.Score())
		}
	}
}

func TestNewControllerErrors(t *testing.T) {
	if _, err := NewController(Options{Palette: DefaultPalette()}); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := NewController(Options{Size: 9}); err == nil {
		t.Error("expected error for empty palette")
	}
	_, err := NewController(Options{Size: 9, Palette: DefaultPalette(), InitialColor: "teal"})
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("error = %v, want ErrUnknownColor", err)
	}
}
