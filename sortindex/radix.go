package sortindex

import "github.com/muka28/TopographicProminence/grid"

// BuildRadix returns the same permutation as Build, computed via a bucketed
// counting sort over the grid's observed elevation range instead of a
// comparator sort. Preferred when N is large (tens of millions of cells)
// and the elevation range is bounded (post-clamp DEM elevations fit
// comfortably in 16 bits), since it runs in O(N + range) rather than
// O(N log N).
//
// Falls back to Build automatically when the observed range is larger than
// 4*N, where a comparator sort is cheaper than allocating range-sized
// bucket tables.
//
// Complexity: O(N + range) time, O(N + range) memory.
func BuildRadix(g *grid.Grid) []int32 {
	n := g.Len()
	if n == 0 {
		return nil
	}

	minElev, maxElev := g.Elev(0), g.Elev(0)
	for i := int32(1); i < n; i++ {
		e := g.Elev(i)
		if e < minElev {
			minElev = e
		}
		if e > maxElev {
			maxElev = e
		}
	}
	rng := int64(maxElev) - int64(minElev) + 1
	if rng > 4*int64(n) {
		return Build(g)
	}

	// counts[v] = number of cells with elevation minElev+v.
	counts := make([]int32, rng)
	for i := int32(0); i < n; i++ {
		counts[int64(g.Elev(i))-int64(minElev)]++
	}

	// offsets[v] = starting position, in descending-elevation order, of the
	// bucket for value minElev+v. The highest elevation bucket starts at 0.
	offsets := make([]int32, rng)
	var pos int32
	for v := rng - 1; v >= 0; v-- {
		offsets[v] = pos
		pos += counts[v]
	}

	order := make([]int32, n)
	cursor := make([]int32, rng)
	copy(cursor, offsets)
	// Iterating i ascending and appending within each bucket preserves the
	// ascending flat-index tie-break, since cursor[v] only advances.
	for i := int32(0); i < n; i++ {
		v := int64(g.Elev(i)) - int64(minElev)
		order[cursor[v]] = i
		cursor[v]++
	}
	return order
}
