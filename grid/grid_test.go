package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muka28/TopographicProminence/grid"
)

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := grid.New(2, 2, []int32{1, 2, 3})
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
}

func TestNew_EmptyAccepted(t *testing.T) {
	g, err := grid.New(0, 0, nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, g.Len())
}

func TestIndexRowCol_RoundTrip(t *testing.T) {
	g, err := grid.New(3, 5, make([]int32, 15))
	require.NoError(t, err)

	for r := int32(0); r < 3; r++ {
		for c := int32(0); c < 5; c++ {
			i := g.Index(r, c)
			gotR, gotC := g.RowCol(i)
			require.Equal(t, r, gotR)
			require.Equal(t, c, gotC)
		}
	}
}

func TestInBounds(t *testing.T) {
	g, err := grid.New(2, 3, make([]int32, 6))
	require.NoError(t, err)

	valid := [][2]int32{{0, 0}, {1, 2}, {0, 2}}
	for _, rc := range valid {
		require.True(t, g.InBounds(rc[0], rc[1]))
	}
	invalid := [][2]int32{{-1, 0}, {2, 0}, {0, 3}, {0, -1}}
	for _, rc := range invalid {
		require.False(t, g.InBounds(rc[0], rc[1]))
	}
}

// TestNeighbors8_Corner verifies a corner cell sees exactly 3 neighbors,
// none of them out of bounds.
func TestNeighbors8_Corner(t *testing.T) {
	g, err := grid.New(3, 3, make([]int32, 9))
	require.NoError(t, err)

	buf := g.Neighbors8(g.Index(0, 0), nil)
	require.Len(t, buf, 3)

	want := []int32{g.Index(0, 1), g.Index(1, 0), g.Index(1, 1)}
	sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, buf)
}

// TestNeighbors8_Interior verifies an interior cell on a 3x3 grid sees all
// 8 neighbors.
func TestNeighbors8_Interior(t *testing.T) {
	g, err := grid.New(3, 3, make([]int32, 9))
	require.NoError(t, err)

	buf := g.Neighbors8(g.Index(1, 1), nil)
	require.Len(t, buf, 8)
}

// TestNeighbors4_ExcludesDiagonals checks that 4-connectivity omits the
// diagonal neighbors that 8-connectivity includes.
func TestNeighbors4_ExcludesDiagonals(t *testing.T) {
	g, err := grid.New(3, 3, make([]int32, 9))
	require.NoError(t, err)

	n4 := g.Neighbors4(g.Index(1, 1), nil)
	n8 := g.Neighbors8(g.Index(1, 1), nil)
	require.Len(t, n4, 4)
	require.Len(t, n8, 8)
}

func TestNeighbors8_1xN(t *testing.T) {
	// A 1xN grid's 8-neighbors degenerate to just the two horizontal
	// neighbors, since there is no second row for diagonals to land in.
	g, err := grid.New(1, 5, make([]int32, 5))
	require.NoError(t, err)

	buf := g.Neighbors8(g.Index(0, 2), nil)
	require.ElementsMatch(t, []int32{g.Index(0, 1), g.Index(0, 3)}, buf)
}
