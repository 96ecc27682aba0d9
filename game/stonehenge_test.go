package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStonehenge(t *testing.T) {
	t.Run("starting state follows the configuration", func(t *testing.T) {
		g, err := NewStonehenge(false, 4)
		require.NoError(t, err)
		require.Equal(t, 4, g.SideLength())
		require.False(t, g.P1Starts())
		require.Equal(t, P2, g.Current().Player())
		require.Len(t, g.Current().LegalMoves(), 18)
		require.NotEmpty(t, g.Instructions())
	})

	t.Run("invalid side length is a configuration error", func(t *testing.T) {
		for _, side := range []int{0, 6, -3} {
			g, err := NewStonehenge(true, side)
			require.ErrorIs(t, err, ErrSideLength)
			require.Nil(t, g)
		}
	})
}

func TestStonehengeIsOver(t *testing.T) {
	g, err := NewStonehenge(true, 2)
	require.NoError(t, err)

	start := g.Current()
	require.False(t, g.IsOver(start))

	s := start.Play("A").Play("C").Play("D").Play("E").Play("F")
	require.True(t, g.IsOver(s))
	require.Empty(t, s.LegalMoves())
}

func TestStonehengeIsWinner(t *testing.T) {
	t.Run("nobody wins before the game is over", func(t *testing.T) {
		g, err := NewStonehenge(true, 1)
		require.NoError(t, err)
		require.False(t, g.IsWinner(P1))
		require.False(t, g.IsWinner(P2))
	})

	t.Run("the player not to move wins once over", func(t *testing.T) {
		g, err := NewStonehenge(true, 1)
		require.NoError(t, err)
		g.SetCurrent(g.Current().Play("C"))

		require.True(t, g.IsWinner(P1))
		require.False(t, g.IsWinner(P2))
	})

	t.Run("decided by turn rather than by line majority", func(t *testing.T) {
		g, err := NewStonehenge(true, 1)
		require.NoError(t, err)
		// P1 holds three lines, but the turn was handed back to P1.
		over := g.Current().Play("A").(*BoardState)
		rewound := &BoardState{geo: over.geo, p1Turn: true, cells: over.cells, lines: over.lines}

		require.True(t, g.IsWinnerAt(rewound, P2))
		require.False(t, g.IsWinnerAt(rewound, P1))
	})
}

func TestStonehengeParseMove(t *testing.T) {
	g, err := NewStonehenge(true, 2)
	require.NoError(t, err)

	for _, text := range []string{"A", "D", "G"} {
		require.Equal(t, Move(text), g.ParseMove(text))
	}
	for _, text := range []string{"", "H", "Z", "a", "AB", "1", " A", "C\n", "A B"} {
		require.Equal(t, NoMove, g.ParseMove(text), "input %q", text)
	}
}
