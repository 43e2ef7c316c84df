package floodfill

// Scoring defaults.
const (
	DefaultMaximumScore = 1000.0
	DefaultMaxMoves     = 8
)

// Scorer tracks the weighted score of a puzzle run.
// The score starts at the maximum and only moves down, except through Restore.
type Scorer struct {
	max      float64
	maxMoves int
	score    float64
}

// NewScorer creates a scorer starting at max. Non-positive arguments fall back to defaults.
func NewScorer(max float64, maxMoves int) *Scorer {
	if max <= 0 {
		max = DefaultMaximumScore
	}
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	return &Scorer{max: max, maxMoves: maxMoves, score: max}
}

// Deduction returns how much a move flooding area cells costs.
// Small floods cost more; past maxMoves+3 cells the cost bottoms out at zero.
func Deduction(area, maxMoves int) float64 {
	mm := float64(maxMoves)
	d := ((mm-float64(area)+1)/mm)*8 + 2
	if d < 0 {
		return 0
	}
	return d
}

// ApplyMove charges a move that flooded area cells and returns the new score.
// A move that flooded nothing is free.
func (s *Scorer) ApplyMove(area int) float64 {
	if area == 0 {
		return s.score
	}
	s.score -= Deduction(area, s.maxMoves)
	if s.score < 0 {
		s.score = 0
	}
	return s.score
}

// Restore sets the score back to a previously recorded value.
func (s *Scorer) Restore(prior float64) {
	s.score = prior
}

// Reset puts the score back at the maximum.
func (s *Scorer) Reset() {
	s.score = s.max
}

// Score returns the current score.
func (s *Scorer) Score() float64 {
	return s.score
}

// Max returns the starting score.
func (s *Scorer) Max() float64 {
	return s.max
}
