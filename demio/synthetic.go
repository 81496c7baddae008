package demio

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/muka28/TopographicProminence/grid"
)

// Bump is a single Gaussian-shaped hill contributing to a synthetic DEM.
type Bump struct {
	CenterRow, CenterCol float64
	Amplitude            float64
	Sigma                float64
}

// SyntheticGrid builds a rows x cols Grid whose surface is the sum of the
// given bumps sampled on the integer lattice, each bump a 2-D Gaussian
// evaluated via distuv.Normal. It exists to give benchmarks and tests
// DEM-shaped fixtures with known, reproducible peak/col structure without
// reading a file from disk.
//
// Amplitudes and base are rounded to the nearest integer elevation, then
// clamped to zero, matching the clamp-to-sea-level behavior of the real
// decoders.
func SyntheticGrid(rows, cols int32, base float64, bumps []Bump) (*grid.Grid, error) {
	elev := make([]int32, int64(rows)*int64(cols))

	normals := make([]distuv.Normal, len(bumps))
	for bi, b := range bumps {
		normals[bi] = distuv.Normal{Mu: 0, Sigma: b.Sigma}
	}

	peakDensity := make([]float64, len(bumps))
	for bi := range bumps {
		peakDensity[bi] = normals[bi].Prob(0)
	}

	for r := int32(0); r < rows; r++ {
		for c := int32(0); c < cols; c++ {
			v := base
			for bi, b := range bumps {
				dr := float64(r) - b.CenterRow
				dc := float64(c) - b.CenterCol
				dist := math.Hypot(dr, dc)
				if peakDensity[bi] == 0 {
					continue
				}
				v += b.Amplitude * normals[bi].Prob(dist) / peakDensity[bi]
			}
			rounded := math.Round(v)
			if rounded < 0 {
				rounded = 0
			}
			elev[int64(r)*int64(cols)+int64(c)] = int32(rounded)
		}
	}

	return grid.New(rows, cols, elev)
}
