// Package peak identifies the strict local maxima of a grid.Grid: cells
// whose elevation is strictly greater than every in-bounds 8-neighbor.
//
// Strict inequality is essential: on a flat plateau no cell is a peak, and
// boundary cells are evaluated identically to interior cells — a missing
// neighbor never counts against a cell.
//
// Complexity: O(N) with a constant (≤8) neighbor bound per cell.
package peak
