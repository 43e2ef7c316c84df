package floodfill

// MoveRecord is the state a move can be rolled back to:
// the board, score and selected color from just before the move.
type MoveRecord struct {
	Grid  Grid
	Score float64
	Color NamedColor
}

// History keeps the board after every move plus one undo record per move.
// Outside of a move in progress, len(grids) == len(moves)+1.
type History struct {
	grids []Grid
	moves []MoveRecord
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// RecordInitial makes g the only board state and drops all move records.
func (h *History) RecordInitial(g Grid) {
	h.grids = []Grid{g}
	h.moves = h.moves[:0]
}

// RecordMove appends an undo record. The grid is copied so later fills
// on the caller's board cannot reach it.
func (h *History) RecordMove(before Grid, score float64, color NamedColor) {
	h.moves = append(h.moves, MoveRecord{
		Grid:  before.Clone(),
		Score: score,
		Color: color,
	})
}

// PushGridState appends the board produced by a move.
func (h *History) PushGridState(g Grid) {
	h.grids = append(h.grids, g)
}

// Undo pops the latest move record and board state.
// It returns false and changes nothing when no moves are recorded.
func (h *History) Undo() (MoveRecord, bool) {
	if len(h.moves) == 0 {
		return MoveRecord{}, false
	}

	rec := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	if len(h.grids) > 1 {
		h.grids = h.grids[:len(h.grids)-1]
	}
	return rec, true
}

// Reset drops all move records. Board states are left to RecordInitial.
func (h *History) Reset() {
	h.moves = h.moves[:0]
}

// Current returns the latest board state.
func (h *History) Current() Grid {
	if len(h.grids) == 0 {
		return Grid{}
	}
	return h.grids[len(h.grids)-1]
}

// Initial returns the first board state.
func (h *History) Initial() Grid {
	if len(h.grids) == 0 {
		return Grid{}
	}
	return h.grids[0]
}

// Moves returns the number of undo records.
func (h *History) Moves() int {
	return len(h.moves)
}

// Grids returns the number of stored board states.
func (h *History) Grids() int {
	return len(h.grids)
}
