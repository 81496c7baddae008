package peak

import "github.com/muka28/TopographicProminence/grid"

// Set is an immutable boolean predicate over flat grid indices, computed
// once by Detect.
type Set struct {
	isPeak []bool
	count  int
}

// Is reports whether cell i is a peak. Out-of-range i is a programming
// error.
func (s *Set) Is(i int32) bool {
	return s.isPeak[i]
}

// Count returns the number of peaks in the set.
func (s *Set) Count() int {
	return s.count
}

// Detect scans every cell of g and returns the Set of cells strictly
// greater than all in-bounds 8-neighbors. Computed once; the caller should
// treat the result as read-only for the remainder of the run.
//
// Complexity: O(N) time, O(N) memory.
func Detect(g *grid.Grid) *Set {
	n := g.Len()
	s := &Set{isPeak: make([]bool, n)}

	var buf [8]int32
	for i := int32(0); i < n; i++ {
		elev := g.Elev(i)
		neighbors := g.Neighbors8(i, buf[:0])
		isPeak := true
		for _, j := range neighbors {
			if g.Elev(j) >= elev {
				isPeak = false
				break
			}
		}
		if isPeak {
			s.isPeak[i] = true
			s.count++
		}
	}
	return s
}
