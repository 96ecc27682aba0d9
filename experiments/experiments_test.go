package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/searcher"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1 // header
}

func TestRoundRobin(t *testing.T) {
	t.Run("records every game", func(t *testing.T) {
		r := RoundRobin{
			Name:       "round_robin",
			SideLength: 2,
			Games:      2,
			Agents: []metrics.AgentConfig{
				{ID: 1, Strategy: searcher.RandomName, Seed: 3},
				{ID: 2, Strategy: searcher.RoughName},
				{ID: 3, Strategy: searcher.RecursiveName},
			},
			OutDir:   t.TempDir(),
			Parallel: 2,
		}
		dir, err := r.Run()
		require.NoError(t, err)

		require.Equal(t, 3, countRows(t, filepath.Join(dir, "agent_configs.csv")))
		require.Equal(t, 6, countRows(t, filepath.Join(dir, "game_records.csv")))
		require.GreaterOrEqual(t, countRows(t, filepath.Join(dir, "move_records.csv")), 6)
	})

	t.Run("too few agents", func(t *testing.T) {
		_, err := RoundRobin{SideLength: 2, Agents: DefaultAgents[:1]}.Run()
		require.ErrorIs(t, err, ErrTooFewAgents)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		agents := []metrics.AgentConfig{{ID: 1, Strategy: "mcts"}, {ID: 2, Strategy: searcher.RandomName}}
		_, err := RoundRobin{SideLength: 2, Agents: agents}.Run()
		require.ErrorIs(t, err, searcher.ErrUnknownStrategy)
	})

	t.Run("side length out of range", func(t *testing.T) {
		_, err := RoundRobin{SideLength: 6, Agents: DefaultAgents}.Run()
		require.ErrorIs(t, err, game.ErrSideLength)
	})
}

func TestRoundRobinMatchUps(t *testing.T) {
	r := RoundRobin{Agents: DefaultAgents}
	matchUps := r.matchUps()
	require.Len(t, matchUps, 6)
	require.Equal(t, DefaultAgents[0], matchUps[0][0])
	require.Equal(t, DefaultAgents[3], matchUps[5][1])
}

func TestRunGameAlternatesStart(t *testing.T) {
	random := metrics.AgentConfig{ID: 1, Strategy: searcher.RandomName}
	_, first, _, err := runGame(random, random, 2, true)
	require.NoError(t, err)
	_, second, _, err := runGame(random, random, 2, false)
	require.NoError(t, err)

	require.Equal(t, game.P1, first.StartingPlayer)
	require.Equal(t, game.P2, second.StartingPlayer)
}

func TestRunThroughputExperiment(t *testing.T) {
	dir, err := RunThroughputExperiment(t.TempDir(), []int{1, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "search_costs.csv")))
}
