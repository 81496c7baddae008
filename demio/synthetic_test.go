package demio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntheticGrid_SingleBumpPeaksAtCenter(t *testing.T) {
	g, err := SyntheticGrid(21, 21, 0, []Bump{
		{CenterRow: 10, CenterCol: 10, Amplitude: 1000, Sigma: 3},
	})
	require.NoError(t, err)

	centerIdx := g.Index(10, 10)
	center := g.Elev(centerIdx)
	for i := int32(0); i < g.Len(); i++ {
		require.LessOrEqual(t, g.Elev(i), center)
	}
}

func TestSyntheticGrid_NegativeBaseClamped(t *testing.T) {
	g, err := SyntheticGrid(5, 5, -50, nil)
	require.NoError(t, err)
	for i := int32(0); i < g.Len(); i++ {
		require.Equal(t, int32(0), g.Elev(i))
	}
}

func TestSyntheticGrid_TwoBumpsProduceTwoLocalMaxima(t *testing.T) {
	g, err := SyntheticGrid(30, 60, 0, []Bump{
		{CenterRow: 10, CenterCol: 10, Amplitude: 1000, Sigma: 2},
		{CenterRow: 20, CenterCol: 45, Amplitude: 800, Sigma: 2},
	})
	require.NoError(t, err)

	a := g.Elev(g.Index(10, 10))
	b := g.Elev(g.Index(20, 45))
	require.Greater(t, a, int32(500))
	require.Greater(t, b, int32(400))
}
