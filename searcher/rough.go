package searcher

import (
	"math"

	"stonehenge/game"
)

// RoughOutcome looks one move ahead and scores each successor with a
// heuristic instead of searching to the end of the game.
type RoughOutcome struct {
	evaluate game.Evaluate
	metrics  MetricsCollector
}

func NewRoughOutcome(options ...Option) *RoughOutcome {
	c := newConfig(options)
	return &RoughOutcome{evaluate: c.evaluate, metrics: c.metrics}
}

func (r *RoughOutcome) FindNextMove(state game.State) game.Move {
	r.metrics.Start()
	defer r.metrics.Complete()

	best, bestScore := game.NoMove, math.Inf(-1)
	for _, move := range state.LegalMoves() {
		r.metrics.AddNode()
		score := -r.evaluate(state.Play(move))
		if score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}
