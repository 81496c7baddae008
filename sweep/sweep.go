package sweep

import (
	"github.com/muka28/TopographicProminence/grid"
	"github.com/muka28/TopographicProminence/peak"
	"github.com/muka28/TopographicProminence/unionfind"
)

// Run drives the descending sweep over order (as produced by sortindex),
// feeding every emitted prominence record to sink, and finally running the
// sea-level-bound post-pass for peaks whose basin was never absorbed.
//
// order must be a permutation of [0, g.Len()) in non-increasing elevation
// order (ties broken by ascending flat index); peaks must have been
// computed over the same g. Violating either is a programming error, not a
// runtime condition — Run performs no defensive validation of its own
// preconditions.
//
// Complexity: O(N·α(N)) for the union-find body plus whatever sink.Insert
// costs per call; neighbor visits are bounded by 8N.
func Run(g *grid.Grid, peaks *peak.Set, order []int32, sink Sink) {
	f := unionfind.New(g.Elevations())
	n := g.Len()
	active := make([]bool, n)

	var nbuf [8]int32
	for _, i := range order {
		f.Activate(i)
		active[i] = true

		for _, j := range g.Neighbors8(i, nbuf[:0]) {
			if !active[j] {
				continue
			}
			res := f.Union(i, j)
			if res.Outcome != unionfind.Merged {
				continue
			}
			emitOnMerge(g, peaks, i, res, sink)
		}
	}

	emitSeaLevelBound(g, peaks, f, sink)
}

// emitOnMerge emits a record iff the absorbed highest cell is a peak
// distinct from the surviving highest cell. colIdx is i, the cell whose
// activation caused the merge — by construction, the highest cell on some
// path from the absorbed peak to higher terrain.
func emitOnMerge(g *grid.Grid, peaks *peak.Set, colIdx int32, res unionfind.UnionResult, sink Sink) {
	h2 := res.AbsorbedHighest
	if h2 == res.SurvivingHighest || !peaks.Is(h2) {
		return
	}
	sink.Insert(Record{
		Prom:     g.Elev(h2) - g.Elev(colIdx),
		PeakIdx:  h2,
		PeakElev: g.Elev(h2),
		ColIdx:   colIdx,
		ColElev:  g.Elev(colIdx),
		HasCol:   true,
	})
}

// emitSeaLevelBound scans every peak after the sweep completes; a peak
// that still names itself as its component's highest cell was never
// absorbed into a higher basin and has no col — its prominence equals its
// own elevation.
func emitSeaLevelBound(g *grid.Grid, peaks *peak.Set, f *unionfind.Forest, sink Sink) {
	n := g.Len()
	for i := int32(0); i < n; i++ {
		if !peaks.Is(i) {
			continue
		}
		root := f.Find(i)
		if f.Highest(root) != i {
			continue
		}
		sink.Insert(Record{
			Prom:     g.Elev(i),
			PeakIdx:  i,
			PeakElev: g.Elev(i),
			HasCol:   false,
		})
	}
}
