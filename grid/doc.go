// Package grid treats a Digital Elevation Model as a flat, row-major array
// of integer elevations, and exposes the 8- and 4-connected neighbor
// relations the rest of the engine sweeps over.
//
// What:
//
//   - Grid wraps a flat []int32 of length Rows*Cols, addressed by the flat
//     index i = r*Cols + c.
//   - Neighbors8 enumerates up to 8 in-bounds neighbors (including
//     diagonals); Neighbors4 enumerates up to 4 (orthogonal only).
//   - Boundary cells are evaluated identically to interior cells: missing
//     neighbors simply are not returned.
//
// Why:
//
//   - Prominence on a DEM requires 8-connectivity (spec: 4-connectivity
//     yields incorrect results for this problem).
//   - A flat, row-major array keeps the sweep's hot loop cache-friendly at
//     tens of millions of cells, where a [][]int32 of row slices would add
//     an extra indirection per row crossing.
//
// Errors:
//
//   - ErrEmptyGrid: Rows == 0 or Cols == 0 (not actually an error condition
//     for the engine — New still succeeds and yields a zero-cell Grid; the
//     sentinel exists for callers that want to reject an empty input
//     explicitly; demio does not use it and reports an empty CSV as
//     ErrInputMalformed).
//   - ErrDimensionMismatch: len(elev) != Rows*Cols.
package grid
