package floodfill

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Size   int
	Board  []string // One row of palette symbols per line
	Score  float64
	Moves  int
	Area   int    // Cells recolored by the latest flood
	Color  string // Selected replacement color
	Cursor Coordinate
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.ctrl.Solved():
		state = StateSolved
	}

	return Snapshot{
		Size:   g.ctrl.Size(),
		Board:  g.board.Format(g.ctrl.Palette()),
		Score:  g.score,
		Moves:  g.ctrl.Moves(),
		Area:   g.ctrl.Area(),
		Color:  g.ctrl.Color().Name,
		Cursor: g.cursor,
		State:  state,
	}
}
