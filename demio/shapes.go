package demio

import "math"

// Shape is a known DEM grid shape, used to resolve a binary file's
// dimensions from its byte length alone.
type Shape struct {
	Rows, Cols int32
}

// knownShapes lists recognized DEM dimensions. Checked in order; the
// first shape whose byte length matches wins.
var knownShapes = []Shape{
	{Rows: 6000, Cols: 4800},
	{Rows: 1200, Cols: 1200},
}

// inferShape resolves rows/cols from a binary file's cell count (byte
// length / 2, since each elevation is a 2-byte int16). It first checks
// knownShapes, then falls back to a square grid iff cells is an exact
// perfect square. Dimensions matching neither a known shape nor a
// perfect square fail closed with ErrDimensionUnknown rather than being
// guessed.
func inferShape(cells int64) (Shape, error) {
	for _, s := range knownShapes {
		if int64(s.Rows)*int64(s.Cols) == cells {
			return s, nil
		}
	}
	side := int64(math.Sqrt(float64(cells)))
	for _, candidate := range []int64{side - 1, side, side + 1} {
		if candidate > 0 && candidate*candidate == cells {
			return Shape{Rows: int32(candidate), Cols: int32(candidate)}, nil
		}
	}
	return Shape{}, ErrDimensionUnknown
}
