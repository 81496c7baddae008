package topk

import (
	"container/heap"

	"github.com/muka28/TopographicProminence/sweep"
)

// Collector is a bounded container holding at most K sweep.Record values,
// ranked by prominence descending, ties broken by higher peakElev, then by
// lexicographically smaller (peakRow, peakCol).
//
// Collector implements sweep.Sink, so it can be passed directly to
// sweep.Run.
type Collector struct {
	k int
	h *recordHeap
}

// NewCollector returns a Collector bounded to the top k records, computing
// (peakRow, peakCol) tie-breaks from flat indices assuming a grid of the
// given column count.
func NewCollector(k int, cols int32) *Collector {
	h := &recordHeap{cols: cols}
	heap.Init(h)
	return &Collector{k: k, h: h}
}

// Insert considers r for membership in the top-K. If the collector has
// fewer than k records, r is added unconditionally. Otherwise, if r
// outranks the current worst-held record, the worst is evicted and r takes
// its place; otherwise r is discarded.
//
// Complexity: O(log K) amortized.
func (c *Collector) Insert(r sweep.Record) {
	if c.k <= 0 {
		return
	}
	if c.h.Len() < c.k {
		heap.Push(c.h, r)
		return
	}
	if worse(c.h.records[0], r, c.h.cols) {
		heap.Pop(c.h)
		heap.Push(c.h, r)
	}
}

// Len reports how many records are currently held (never more than K).
func (c *Collector) Len() int {
	return c.h.Len()
}

// Drain empties the collector and returns its contents in descending
// ranking order. The collector is empty after this call.
func (c *Collector) Drain() []sweep.Record {
	out := make([]sweep.Record, c.h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(c.h).(sweep.Record)
	}
	return out
}

// recordHeap is the container/heap backing store. Its Less implements the
// "worse than" relation: the root is always the single worst record
// currently held, the one Insert evicts first when a better record
// arrives.
type recordHeap struct {
	records []sweep.Record
	cols    int32
}

func (h recordHeap) Len() int { return len(h.records) }
func (h recordHeap) Less(i, j int) bool {
	return worse(h.records[i], h.records[j], h.cols)
}
func (h recordHeap) Swap(i, j int) { h.records[i], h.records[j] = h.records[j], h.records[i] }

func (h *recordHeap) Push(x any) {
	h.records = append(h.records, x.(sweep.Record))
}

func (h *recordHeap) Pop() any {
	old := h.records
	n := len(old)
	item := old[n-1]
	h.records = old[:n-1]
	return item
}

// worse reports whether a ranks below b: lower prom loses; on a prom tie,
// lower peakElev loses; on a further tie, the record naming the
// lexicographically later (peakRow, peakCol) loses.
func worse(a, b sweep.Record, cols int32) bool {
	if a.Prom != b.Prom {
		return a.Prom < b.Prom
	}
	if a.PeakElev != b.PeakElev {
		return a.PeakElev < b.PeakElev
	}
	arow, acol := a.PeakIdx/cols, a.PeakIdx%cols
	brow, bcol := b.PeakIdx/cols, b.PeakIdx%cols
	if arow != brow {
		return arow > brow
	}
	return acol > bcol
}
