// Package topoprominence computes topographic prominence for peaks in a
// rectangular Digital Elevation Model: for every local maximum, how far
// you must descend before a path leads to strictly higher ground, and the
// col (saddle) cell where that path crosses.
//
// The engine is organized as a pipeline of small, single-purpose
// packages, following the same flat-index, no-hidden-allocation approach
// a grid-adjacency or union-find library takes to a graph:
//
//	grid/       — flat elevation storage, 8/4-neighbor iteration, bounds checks
//	peak/       — boundary-aware strict-local-maximum detection
//	sortindex/  — descending-elevation permutation with deterministic tie-break
//	unionfind/  — disjoint-set forest with per-component "highest active cell" tracking
//	sweep/      — the descending activation pass and emission rule
//	topk/       — bounded top-K result collector
//	prominence/ — the ComputeProminence facade tying the above together
//	demio/      — binary/CSV DEM file decoding
//	report/     — fixed-width text table rendering
//
// cmd/prominence wires decode, compute, and report into a single CLI
// binary.
package topoprominence
