package prominence

import (
	"github.com/muka28/TopographicProminence/grid"
	"github.com/muka28/TopographicProminence/peak"
	"github.com/muka28/TopographicProminence/sortindex"
	"github.com/muka28/TopographicProminence/sweep"
	"github.com/muka28/TopographicProminence/topk"
)

// Result is a single prominence record translated into (row, col)
// coordinates for external consumption. PeakRow/PeakCol and, when HasCol
// is true, ColRow/ColCol always fall within the source grid's bounds;
// ColElev never exceeds PeakElev, and Prom equals PeakElev - ColElev when
// HasCol is true or PeakElev itself when it is false.
type Result struct {
	Prom     int32
	PeakRow  int32
	PeakCol  int32
	PeakElev int32
	HasCol   bool
	ColRow   int32
	ColCol   int32
	ColElev  int32
}

// ComputeProminence runs the full pipeline — peak detection, descending
// sort, the disjoint-set sweep, and top-K collection — and returns at most
// k results in descending prominence order.
//
// Preconditions: g.Len() fits in an int32 index (grid.New does not check
// this); every elevation is ≥ 0. Sea level is fixed at elevation 0, and
// clamping negative input elevations up to it is the caller's / demio's
// responsibility, not this package's.
//
// An empty grid (g.Len() == 0) returns nil rather than an error, since
// there are simply no peaks to report.
func ComputeProminence(g *grid.Grid, k int) []Result {
	if g.Len() == 0 {
		return nil
	}

	peaks := peak.Detect(g)
	order := sortindex.Build(g)
	collector := topk.NewCollector(k, g.Cols)
	sweep.Run(g, peaks, order, collector)

	records := collector.Drain()
	results := make([]Result, len(records))
	for i, r := range records {
		results[i] = toResult(g, r)
	}
	return results
}

func toResult(g *grid.Grid, r sweep.Record) Result {
	peakRow, peakCol := g.RowCol(r.PeakIdx)
	res := Result{
		Prom:     r.Prom,
		PeakRow:  peakRow,
		PeakCol:  peakCol,
		PeakElev: r.PeakElev,
		HasCol:   r.HasCol,
	}
	if r.HasCol {
		colRow, colCol := g.RowCol(r.ColIdx)
		res.ColRow, res.ColCol, res.ColElev = colRow, colCol, r.ColElev
	}
	return res
}
