package searcher

import (
	"stonehenge/game"
	"stonehenge/utils"

	"github.com/rs/zerolog/log"
)

// Recursive searches the whole game tree depth-first with negamax. It keeps
// no table of visited states, so every path is searched again.
type Recursive struct {
	game    game.Game
	metrics MetricsCollector
}

func NewRecursive(g game.Game, options ...Option) *Recursive {
	c := newConfig(options)
	return &Recursive{game: g, metrics: c.metrics}
}

func (r *Recursive) FindNextMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove
	}

	r.metrics.Start()
	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = -r.value(state.Play(move))
	}
	best := utils.ArgMax(scores)

	if m := r.metrics.Complete(); collecting(r.metrics) {
		log.Debug().Msgf("recursive search visited %d states (%d leaves) in %v", m.Nodes, m.Leaves, m.Duration)
	}
	return moves[best]
}

// Value returns the best score the player to move at state can force.
func (r *Recursive) Value(state game.State) float64 {
	return r.value(state)
}

func (r *Recursive) value(state game.State) float64 {
	r.metrics.AddNode()
	moves := state.LegalMoves()
	if len(moves) == 0 {
		r.metrics.AddLeaf()
		return terminalScore(r.game, state)
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = -r.value(state.Play(move))
	}
	return maxScore(scores)
}
