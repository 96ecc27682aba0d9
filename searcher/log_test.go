package searcher

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
	return &buf
}

func TestSearchLogging(t *testing.T) {
	t.Run("silent without a collector", func(t *testing.T) {
		buf := captureLog(t)
		g, start := newStonehenge(t, 1)
		NewRecursive(g).FindNextMove(start)
		NewIterative(g).FindNextMove(start)
		require.Empty(t, buf.String())
	})

	t.Run("counts with a collector", func(t *testing.T) {
		buf := captureLog(t)
		g, start := newStonehenge(t, 1)
		NewRecursive(g, WithMetrics(NewMetricsCollector())).FindNextMove(start)
		NewIterative(g, WithMetrics(NewMetricsCollector())).FindNextMove(start)
		require.Contains(t, buf.String(), "recursive search visited 3 states (3 leaves)")
		require.Contains(t, buf.String(), "iterative search built 4 nodes (3 leaves)")
	})
}
