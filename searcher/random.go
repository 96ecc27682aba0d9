package searcher

import (
	"stonehenge/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly chosen legal move. Experiments use it as a
// baseline opponent.
type Random struct {
	rng     *rand.Rand
	metrics MetricsCollector
}

func NewRandom(options ...Option) *Random {
	c := newConfig(options)
	return &Random{rng: rand.New(rand.NewSource(c.seed)), metrics: c.metrics}
}

func (r *Random) FindNextMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove
	}
	r.metrics.Start()
	defer r.metrics.Complete()
	r.metrics.AddNode()
	return moves[r.rng.Intn(len(moves))]
}
