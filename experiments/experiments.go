package experiments

import (
	"errors"
	"fmt"

	"stonehenge/engine"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames = 10 // Per match up
	OutDir   = "experiments"
)

var ErrTooFewAgents = errors.New("a round robin needs at least two agents")

// RoundRobin pairs every agent with every other one on a board of a single
// side length.
type RoundRobin struct {
	Name       string
	SideLength int
	Games      int // per match up; starting player alternates
	Agents     []metrics.AgentConfig
	OutDir     string
	Parallel   int // match ups played at once
}

// DefaultAgents pits the heuristic and full searches against a random
// baseline.
var DefaultAgents = []metrics.AgentConfig{
	{ID: 1, Strategy: searcher.RandomName, Seed: 1},
	{ID: 2, Strategy: searcher.RoughName},
	{ID: 3, Strategy: searcher.RecursiveName},
	{ID: 4, Strategy: searcher.IterativeName},
}

func (r RoundRobin) matchUps() [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for i := range r.Agents {
		for j := i + 1; j < len(r.Agents); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{r.Agents[i], r.Agents[j]})
		}
	}
	return matchUps
}

// Run plays every match up and stores the records as CSV files under
// OutDir/Name. It returns the directory written to.
func (r RoundRobin) Run() (string, error) {
	if len(r.Agents) < 2 {
		return "", ErrTooFewAgents
	}
	if _, err := game.GeometryFor(r.SideLength); err != nil {
		return "", err
	}
	for _, config := range r.Agents {
		if _, err := newStrategy(config, nil, nil); err != nil {
			return "", fmt.Errorf("agent %d: %w", config.ID, err)
		}
	}

	games := r.Games
	if games <= 0 {
		games = NumGames
	}
	outDir := r.OutDir
	if outDir == "" {
		outDir = OutDir
	}

	collector := metrics.NewCollector()
	matchUps := r.matchUps()
	log.Info().Msgf("starting %s experiment with %d match ups...", r.Name, len(matchUps))

	var eg errgroup.Group
	if r.Parallel > 0 {
		eg.SetLimit(r.Parallel)
	}
	for mi, matchUp := range matchUps {
		eg.Go(func() error {
			config1, config2 := matchUp[0], matchUp[1]
			log.Info().Msgf("starting match up %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

			for i := 0; i < games; i++ {
				winner, gameMetric, moveMetrics, err := runGame(config1, config2, r.SideLength, i%2 == 0)
				if err != nil {
					return err
				}
				collector.AddGame(config1, config2, gameMetric, moveMetrics)
				log.Info().Msgf("completed match up %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}
	log.Info().Msgf("completed %s experiment", r.Name)

	writer, err := metrics.NewWriter(outDir, r.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(r.Agents); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(collector.GameRecords()); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(collector.MoveRecords()); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays one game with agent1 as p1 and agent2 as p2.
func runGame(config1, config2 metrics.AgentConfig, sideLength int, p1Starts bool) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	g, err := game.NewStonehenge(p1Starts, sideLength)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	agents := make([]engine.Agent, 2)
	for i, config := range []metrics.AgentConfig{config1, config2} {
		collector := searcher.NewMetricsCollector()
		strategy, err := newStrategy(config, g, collector)
		if err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
		agents[i] = engine.Agent{Strategy: strategy, Metrics: collector}
	}

	winner, gameMetric, moveMetrics := engine.NewLocalEngine(g, agents[0], agents[1]).Run()
	return winner, gameMetric, moveMetrics, nil
}

func newStrategy(config metrics.AgentConfig, g game.Game, collector searcher.MetricsCollector) (searcher.Strategy, error) {
	return searcher.New(config.Strategy, g, searcher.WithMetrics(collector), searcher.WithSeed(config.Seed))
}
