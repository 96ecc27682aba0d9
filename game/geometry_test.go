package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryFor(t *testing.T) {
	t.Run("cell and line counts for every side length", func(t *testing.T) {
		for side := MinSideLength; side <= MaxSideLength; side++ {
			geo, err := GeometryFor(side)
			require.NoError(t, err)
			require.Equal(t, (side*side+5*side)/2, geo.Cells(), "side %d", side)
			require.Equal(t, 3*(side+1), geo.Lines(), "side %d", side)
			require.Equal(t, CellCount(side), geo.Cells())
			require.Equal(t, LineCount(side), geo.Lines())
		}
	})

	t.Run("rejects side lengths out of range", func(t *testing.T) {
		for _, side := range []int{-1, 0, 6, 26} {
			_, err := GeometryFor(side)
			require.ErrorIs(t, err, ErrSideLength, "side %d", side)
		}
	})

	t.Run("smallest board skips index 3", func(t *testing.T) {
		geo, err := GeometryFor(1)
		require.NoError(t, err)
		require.Equal(t, []Move{"A", "B", "C"}, geo.Letters())

		index, ok := geo.Index("C")
		require.True(t, ok)
		require.Equal(t, 4, index, "last cell should be labelled one index further on")

		_, ok = geo.Index("D")
		require.False(t, ok)
	})

	t.Run("smallest board ley-lines", func(t *testing.T) {
		geo, err := GeometryFor(1)
		require.NoError(t, err)

		expected := [][]int{{1, 2}, {4}, {2}, {1, 4}, {1}, {2, 4}}
		families := []LineFamily{Row, Row, UpLeft, UpLeft, DownLeft, DownLeft}
		for line := range expected {
			require.Equal(t, expected[line], geo.LineIndices(line), "line %d", line)
			require.Equal(t, families[line], geo.Family(line), "line %d", line)
		}
	})

	t.Run("exactly one index skipped below the largest board", func(t *testing.T) {
		skipped := map[int]int{1: 3, 2: 6, 3: 10, 4: 15}
		for side, missing := range skipped {
			geo, err := GeometryFor(side)
			require.NoError(t, err)

			seen := map[int]bool{}
			for _, letter := range geo.Letters() {
				index, ok := geo.Index(letter)
				require.True(t, ok)
				seen[index] = true
			}
			require.False(t, seen[missing], "side %d should skip index %d", side, missing)
			for index := 1; index <= geo.Cells()+1; index++ {
				if index != missing {
					require.True(t, seen[index], "side %d should label index %d", side, index)
				}
			}
		}
	})

	t.Run("every cell lies on one line of each family", func(t *testing.T) {
		for side := MinSideLength; side <= MaxSideLength; side++ {
			geo, err := GeometryFor(side)
			require.NoError(t, err)
			for p := 0; p < geo.Cells(); p++ {
				require.Len(t, geo.crossing[p], 3, "side %d cell %s", side, geo.letters[p])
			}
		}
	})

	t.Run("layouts are shared", func(t *testing.T) {
		first, err := GeometryFor(3)
		require.NoError(t, err)
		second, err := GeometryFor(3)
		require.NoError(t, err)
		require.Same(t, first, second)
	})
}
