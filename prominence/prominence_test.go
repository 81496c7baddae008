package prominence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muka28/TopographicProminence/grid"
	"github.com/muka28/TopographicProminence/prominence"
)

func TestComputeProminence_SinglePeak1x1(t *testing.T) {
	g, err := grid.New(1, 1, []int32{5})
	require.NoError(t, err)

	results := prominence.ComputeProminence(g, 100)
	require.Len(t, results, 1)
	require.EqualValues(t, 5, results[0].Prom)
	require.False(t, results[0].HasCol)
}

func TestComputeProminence_EmptyGrid(t *testing.T) {
	g, err := grid.New(0, 0, nil)
	require.NoError(t, err)
	require.Nil(t, prominence.ComputeProminence(g, 100))
}

func TestComputeProminence_KBoundsResultLength(t *testing.T) {
	elev := []int32{
		0, 0, 0, 0, 0,
		0, 10, 0, 7, 0,
		0, 0, 3, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	g, err := grid.New(5, 5, elev)
	require.NoError(t, err)

	results := prominence.ComputeProminence(g, 1)
	require.Len(t, results, 1)
	require.EqualValues(t, 10, results[0].Prom) // only the single best-ranked record survives
}

func TestComputeProminence_PostconditionsHold(t *testing.T) {
	elev := []int32{3, 1, 5, 2, 4}
	g, err := grid.New(1, 5, elev)
	require.NoError(t, err)

	results := prominence.ComputeProminence(g, 100)
	require.NotEmpty(t, results)
	for _, r := range results {
		require.True(t, r.PeakRow >= 0 && r.PeakRow < g.Rows)
		require.True(t, r.PeakCol >= 0 && r.PeakCol < g.Cols)
		if r.HasCol {
			require.True(t, r.ColRow >= 0 && r.ColRow < g.Rows)
			require.True(t, r.ColCol >= 0 && r.ColCol < g.Cols)
			require.LessOrEqual(t, r.ColElev, r.PeakElev)
			require.Equal(t, r.PeakElev-r.ColElev, r.Prom)
		} else {
			require.Equal(t, r.PeakElev, r.Prom)
		}
	}
}

// TestComputeProminence_DescendingOrder checks that results come back
// sorted by prominence descending.
func TestComputeProminence_DescendingOrder(t *testing.T) {
	elev := []int32{3, 1, 5, 2, 4, 0, 6, 2, 1, 9}
	g, err := grid.New(2, 5, elev)
	require.NoError(t, err)

	results := prominence.ComputeProminence(g, 100)
	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Prom, results[i].Prom)
	}
}
