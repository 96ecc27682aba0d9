package searcher

import (
	"errors"
	"fmt"
	"math"

	"stonehenge/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks the next move for the player to move at state. Every
// strategy returns game.NoMove when state has no legal moves.
type Strategy interface {
	FindNextMove(state game.State) game.Move
}

// Names of the strategies New can build.
const (
	RecursiveName = "recursive"
	IterativeName = "iterative"
	RoughName     = "rough"
	RandomName    = "random"
)

// New builds a computer strategy by name.
func New(name string, g game.Game, options ...Option) (Strategy, error) {
	switch name {
	case RecursiveName:
		return NewRecursive(g, options...), nil
	case IterativeName:
		return NewIterative(g, options...), nil
	case RoughName:
		return NewRoughOutcome(options...), nil
	case RandomName:
		return NewRandom(options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// terminalScore scores a state without legal moves for the player to move.
func terminalScore(g game.Game, state game.State) float64 {
	player := state.Player()
	switch {
	case g.IsWinnerAt(state, player):
		return game.Win
	case g.IsWinnerAt(state, game.Opponent(player)):
		return game.Lose
	default:
		return game.Draw
	}
}

func maxScore(scores []float64) float64 {
	best := math.Inf(-1)
	for _, score := range scores {
		best = math.Max(best, score)
	}
	return best
}
