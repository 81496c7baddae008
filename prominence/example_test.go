package prominence_test

import (
	"fmt"

	"github.com/muka28/TopographicProminence/grid"
	"github.com/muka28/TopographicProminence/prominence"
)

// ExampleComputeProminence demonstrates a 1x5 ridge with a tall middle
// peak and two lesser peaks at either end, each bounded by a clear col.
func ExampleComputeProminence() {
	g, err := grid.New(1, 5, []int32{3, 1, 5, 2, 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range prominence.ComputeProminence(g, 100) {
		if r.HasCol {
			fmt.Printf("peak=(%d,%d) elev=%d prom=%d col=(%d,%d) colElev=%d\n",
				r.PeakRow, r.PeakCol, r.PeakElev, r.Prom, r.ColRow, r.ColCol, r.ColElev)
		} else {
			fmt.Printf("peak=(%d,%d) elev=%d prom=%d col=NA\n",
				r.PeakRow, r.PeakCol, r.PeakElev, r.Prom)
		}
	}
	// Output:
	// peak=(0,2) elev=5 prom=5 col=NA
	// peak=(0,4) elev=4 prom=2 col=(0,3) colElev=2
	// peak=(0,0) elev=3 prom=2 col=(0,1) colElev=1
}
