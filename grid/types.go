package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a caller explicitly rejected a zero-area grid.
	// New itself does not return this — it is for boundary callers that
	// want EmptyGrid to be a reportable condition.
	ErrEmptyGrid = errors.New("grid: grid has no rows or no columns")
	// ErrDimensionMismatch indicates the elevation slice does not have
	// exactly Rows*Cols entries.
	ErrDimensionMismatch = errors.New("grid: elevation length does not match rows*cols")
)

// offsets8 lists the 8-connected neighbor deltas in a fixed, deterministic
// order: N, NE, E, SE, S, SW, W, NW.
var offsets8 = [8][2]int32{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// offsets4 lists the 4-connected neighbor deltas: N, E, S, W.
var offsets4 = [4][2]int32{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Grid is an immutable, flat-array view over a rectangular Digital
// Elevation Model. Elevations are stored in row-major order; the flat
// index for (r, c) is r*Cols + c.
type Grid struct {
	Rows, Cols int32
	elev       []int32
}
