package engine

import "stonehenge/experiments/metrics"

// MaxMoves caps a game by default. Every move claims one of at most 25 cells,
// so a finished game never reaches it.
const MaxMoves = 25

type Engine interface {
	// Run plays until the game is over, a player cannot come up with a legal
	// move, or the move cap is reached.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
