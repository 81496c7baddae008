// Package demio decodes Digital Elevation Model files into a grid.Grid.
// It performs all I/O, dimension inference, and sea-level clamping, and
// never participates in the deterministic sweep itself.
//
// Two formats are supported:
//
//   - Binary: a contiguous sequence of little-endian int16 elevations.
//     Dimensions are inferred from file length against a table of known
//     DEM shapes (6000x4800, 1200x1200); if the length matches none of
//     them, a square grid is assumed iff the cell count is a perfect
//     square, otherwise decoding fails closed with ErrDimensionUnknown
//     rather than guessing.
//   - CSV: comma-separated integer rows; a ragged row count fails with
//     ErrInputMalformed.
//
// Elevations below zero are clamped to zero (sea level) during decode.
package demio
