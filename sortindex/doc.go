// Package sortindex produces the descending-elevation permutation the
// sweep engine drives over. Two interchangeable backends are provided:
//
//   - Build: a comparator sort (sort.Slice) over elevation desc, flat-index
//     asc — the default.
//   - BuildRadix: a bucketed counting sort keyed on the grid's bounded
//     16-bit elevation range, for the ~3e7-cell case where O(N log N)
//     comparator sort becomes the dominant cost.
//
// Both produce byte-identical orderings: elevation non-increasing, ties
// broken by ascending flat index. Determinism here is what fixes which of
// two simultaneously-activating neighbors is activated first, and so which
// peak absorbs which when two equal-elevation peaks would otherwise
// collide.
package sortindex
