package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"A", "B", "C"}, "B"))
	require.Equal(t, -1, FindIndex([]string{"A"}, "Z"))
}

func TestArgMax(t *testing.T) {
	t.Run("first maximum wins", func(t *testing.T) {
		require.Equal(t, 1, ArgMax([]float64{-1, 1, 0, 1}))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, -1, ArgMax([]int{}))
	})
}
