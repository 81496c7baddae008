package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/muka28/TopographicProminence/unionfind"
)

// BenchmarkUnionChain measures Union+Find throughput over a random pairing
// of N singletons, approximating the sweep engine's per-cell union cost.
func BenchmarkUnionChain(b *testing.B) {
	const n = 1 << 16
	elev := make([]int32, n)
	rnd := rand.New(rand.NewSource(1))
	for i := range elev {
		elev[i] = int32(rnd.Intn(1 << 14))
	}

	for i := 0; i < b.N; i++ {
		f := unionfind.New(elev)
		for j := int32(0); j < n; j++ {
			f.Activate(j)
		}
		for j := int32(1); j < n; j++ {
			f.Union(j-1, j)
		}
	}
}
