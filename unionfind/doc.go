// Package unionfind implements the disjoint-set forest at the heart of the
// sweep engine: path-compressed, union-by-rank, with a per-root "highest
// active cell" summary maintained incrementally on every union.
//
// Union-by-rank keeps the forest shallow, and ties on equal rank resolve
// deterministically rather than arbitrarily. The per-root highest-cell
// summary is maintained incrementally on every union so the sweep engine
// can read a component's elevation maximum in O(1) without a side map.
//
// Path compression is iterative and two-pass (find the root, then rewrite
// every visited node to point at it directly) rather than recursive, to
// avoid stack growth along pathological chains at N on the order of tens
// of millions of cells.
package unionfind
