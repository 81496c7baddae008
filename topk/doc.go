// Package topk keeps the K most prominent sweep.Record values seen so far
// in a bounded container, and drains them in ranking order.
//
// The container is a container/heap-backed min-heap ordered so that the
// least-ranked record sits at the root — the one evicted when a new
// record arrives and the container is already at capacity. Ranking uses a
// three-level comparator: prom descending, then peakElev descending, then
// (peakRow, peakCol) lexicographically ascending; eviction applies the
// same ordering in reverse, discarding whichever held record currently
// ranks worst.
package topk
