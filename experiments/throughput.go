package experiments

import (
	"fmt"

	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Full searches from an empty board of side 3 or more take too long, so
// larger boards are searched from positions with cells already claimed.
const maxOpenCells = 8

// RunThroughputExperiment measures how many states each full search visits
// per second. Each side length is searched from a position with at most
// maxOpenCells open cells, reached by random moves.
func RunThroughputExperiment(outDir string, sideLengths []int, seed uint64) (string, error) {
	rng := rand.New(rand.NewSource(seed))
	costs := []metrics.SearchCost{}

	for _, side := range sideLengths {
		g, err := game.NewStonehenge(true, side)
		if err != nil {
			return "", err
		}
		state := g.Current()
		for len(state.LegalMoves()) > maxOpenCells {
			moves := state.LegalMoves()
			state = state.Play(moves[rng.Intn(len(moves))])
		}
		if len(state.LegalMoves()) == 0 {
			log.Info().Msgf("side length %d: random opening ended the game, skipping", side)
			continue
		}

		for _, name := range []string{searcher.RecursiveName, searcher.IterativeName} {
			collector := searcher.NewMetricsCollector()
			strategy, err := searcher.New(name, g, searcher.WithMetrics(collector))
			if err != nil {
				return "", err
			}
			move := strategy.FindNextMove(state)
			m := collector.Complete()

			log.Info().Msgf("side length %d: %s chose %s after %d states in %v", side, name, move, m.Nodes, m.Duration)
			costs = append(costs, metrics.SearchCost{
				Strategy:      name,
				SideLength:    side,
				OpenCells:     len(state.LegalMoves()),
				SearchMetrics: m,
			})
		}
	}

	writer, err := metrics.NewWriter(outDir, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSearchCosts(costs); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
