package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newState(t *testing.T, p1Turn bool, side int) *BoardState {
	t.Helper()
	s, err := NewBoardState(p1Turn, side)
	require.NoError(t, err)
	return s
}

func play(t *testing.T, s State, moves ...Move) *BoardState {
	t.Helper()
	for _, move := range moves {
		s = s.Play(move)
	}
	bs, ok := s.(*BoardState)
	require.True(t, ok)
	return bs
}

func TestNewBoardState(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		s := newState(t, true, 3)
		require.Equal(t, P1, s.Player())
		require.Equal(t, 0, s.Claimed())
		require.Equal(t, Outcome{}, s.Outcome())
		for line := 0; line < s.Geometry().Lines(); line++ {
			p1, p2 := s.Votes(line)
			require.Zero(t, p1)
			require.Zero(t, p2)
			require.False(t, s.Capture(line).Locked())
		}
	})

	t.Run("player two can start", func(t *testing.T) {
		s := newState(t, false, 2)
		require.Equal(t, P2, s.Player())
	})

	t.Run("rejects invalid side lengths", func(t *testing.T) {
		_, err := NewBoardState(true, 6)
		require.ErrorIs(t, err, ErrSideLength)
		_, err = NewBoardState(true, 0)
		require.ErrorIs(t, err, ErrSideLength)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("all cells in letter order at the start", func(t *testing.T) {
		s := newState(t, true, 3)
		require.Equal(t, []Move{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}, s.LegalMoves())
	})

	t.Run("claimed cells are gone", func(t *testing.T) {
		s := play(t, newState(t, true, 3), "A")
		require.Equal(t, []Move{"B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}, s.LegalMoves())
	})

	t.Run("none once the game is decided", func(t *testing.T) {
		s := play(t, newState(t, true, 1), "A")
		require.Equal(t, Owner1, s.Owner("A"))
		require.True(t, s.Over())
		require.Empty(t, s.LegalMoves(), "cells B and C are unclaimed but the game is over")
	})
}

func TestPlay(t *testing.T) {
	t.Run("smallest board opens with three moves and ends after one", func(t *testing.T) {
		start := newState(t, true, 1)
		require.Len(t, start.LegalMoves(), 3)

		s := play(t, start, "A")
		// A lies on the row [A, B], the diagonal [A, C] and the single cell line [A].
		require.Equal(t, Owner1, s.Capture(0).Owner())
		require.Equal(t, Owner1, s.Capture(3).Owner())
		require.Equal(t, Owner1, s.Capture(4).Owner())
		require.False(t, s.Capture(1).Locked())
		require.False(t, s.Capture(2).Locked())
		require.False(t, s.Capture(5).Locked())
		require.Equal(t, Outcome{P1: 3}, s.Outcome())
	})

	t.Run("single cell lines lock immediately", func(t *testing.T) {
		s := play(t, newState(t, false, 1), "C")
		require.Equal(t, Owner2, s.Capture(1).Owner(), "line [C] has one cell and 1 > 0")
	})

	t.Run("claiming A on side two captures two lines", func(t *testing.T) {
		s := play(t, newState(t, true, 2), "A")
		require.Equal(t, P2, s.Player())
		require.Equal(t, Outcome{P1: 2}, s.Outcome())
	})

	t.Run("captures are credited to the mover", func(t *testing.T) {
		s := play(t, newState(t, true, 3), "K", "A")
		require.Equal(t, P1, s.Player())
		require.Equal(t, Outcome{P1: 0, P2: 1}, s.Outcome())
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		start := newState(t, true, 2)
		before := start.String()
		next := play(t, start, "D")

		require.Equal(t, before, start.String())
		require.Equal(t, Unowned, start.Owner("D"))
		require.Equal(t, Owner1, next.Owner("D"))
		require.Equal(t, 0, start.Claimed())
		require.Equal(t, P1, start.Player())
	})

	t.Run("siblings do not interfere", func(t *testing.T) {
		start := newState(t, true, 2)
		left := play(t, start, "A")
		right := play(t, start, "G")

		require.Equal(t, Unowned, left.Owner("G"))
		require.Equal(t, Unowned, right.Owner("A"))
		require.Equal(t, Outcome{P1: 2}, left.Outcome())
	})

	t.Run("invalid moves return the same state", func(t *testing.T) {
		s := play(t, newState(t, true, 2), "A")
		for _, move := range []Move{"A", "Z", "H", "a", "", NoMove} {
			got := s.Play(move)
			require.Same(t, s, got, "move %q", move)
			require.True(t, s.Equal(got))
		}
	})
}

func TestEqual(t *testing.T) {
	t.Run("compares turn and captured lines only", func(t *testing.T) {
		start := newState(t, true, 3)
		// Neither pair of moves captures anything.
		first := play(t, start, "C", "D")
		second := play(t, start, "G", "H")
		require.Equal(t, Outcome{}, first.Outcome())
		require.True(t, first.Equal(second))
	})

	t.Run("different turn", func(t *testing.T) {
		start := newState(t, true, 3)
		require.False(t, start.Equal(play(t, start, "F")))
	})

	t.Run("different captures", func(t *testing.T) {
		start := newState(t, true, 3)
		s2 := play(t, start, "K")
		s3 := play(t, s2, "A")
		require.False(t, s3.Equal(start))
		require.False(t, s3.Equal(s2))
	})
}

func TestPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for side := MinSideLength; side <= MaxSideLength; side++ {
		for game := 0; game < 20; game++ {
			s := newState(t, game%2 == 0, side)
			played := 0
			for {
				moves := s.LegalMoves()
				require.Equal(t, s.Over(), len(moves) == 0, "side %d: no moves exactly when over", side)
				if len(moves) == 0 {
					break
				}

				next := play(t, s, moves[rng.Intn(len(moves))])
				played++
				require.Equal(t, played, next.Claimed())
				require.NotEqual(t, s.Player(), next.Player())

				for line := 0; line < s.Geometry().Lines(); line++ {
					before, after := s.Capture(line), next.Capture(line)
					if before.Locked() {
						require.Equal(t, before, after, "side %d line %d changed hands", side, line)
					}
					p1, p2 := s.Votes(line)
					n1, n2 := next.Votes(line)
					require.GreaterOrEqual(t, n1, p1)
					require.GreaterOrEqual(t, n2, p2)
					require.LessOrEqual(t, n1+n2, s.Geometry().lineSize(line))
				}
				s = next
			}
		}
	}
}

func TestString(t *testing.T) {
	s := play(t, newState(t, true, 1), "B")
	out := s.String()
	require.Contains(t, out, "p2 to move, ley-lines p1: 3, p2: 0")
	require.Contains(t, out, "1 - A - 1")
	require.Contains(t, out, "  @ - C")
	require.Contains(t, out, "up-left:   1 @")
	require.Contains(t, out, "down-left: @ 1")
}
