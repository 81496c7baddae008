package sortindex

import (
	"sort"

	"github.com/muka28/TopographicProminence/grid"
)

// Build returns a permutation order[0..N) of flat indices such that
// g.Elev(order[k]) is non-increasing in k, with ties broken by ascending
// flat index.
//
// Complexity: O(N log N) time, O(N) memory.
func Build(g *grid.Grid) []int32 {
	n := g.Len()
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		ea, eb := g.Elev(ia), g.Elev(ib)
		if ea != eb {
			return ea > eb
		}
		return ia < ib
	})
	return order
}
