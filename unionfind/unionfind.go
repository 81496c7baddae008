package unionfind

// Find returns the root of the component containing i, applying iterative
// two-pass path compression: the first pass walks to the root, the second
// rewrites every visited node to point directly at it. This avoids the
// stack growth a recursive formulation would incur along a pathological
// chain at N on the order of tens of millions of cells.
//
// Complexity: amortized near-O(1) (inverse-Ackermann with union-by-rank).
func (f *Forest) Find(i int32) int32 {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		i, f.parent[i] = f.parent[i], root
	}
	return root
}

// Activate (re-)asserts that cell i is its own singleton root with itself
// as the component's highest active cell. New already establishes this at
// construction; the sweep engine calls Activate on each cell at the moment
// it transitions Inactive→Active, making the assertion explicit at the
// point it matters rather than relying on it having never been disturbed.
func (f *Forest) Activate(i int32) {
	f.parent[i] = i
	f.rank[i] = 0
	f.highest[i] = i
}

// Highest returns the flat index of the highest-elevation active cell in
// the component rooted at root. root must already be a root (the result of
// a prior Find); passing a non-root is a programming error.
func (f *Forest) Highest(root int32) int32 {
	return f.highest[root]
}

// higher returns whichever of a, b has the greater elevation, breaking ties
// by the smaller flat index — the same deterministic tie-break used for
// sort order, peak absorption, and highest-cell summaries throughout this
// package, so that results never depend on iteration or map order.
func (f *Forest) higher(a, b int32) int32 {
	ea, eb := f.elev[a], f.elev[b]
	if ea != eb {
		if ea > eb {
			return a
		}
		return b
	}
	if a < b {
		return a
	}
	return b
}

// Union requires both i and j to already be active (Activate having been
// called on each). If they are already in the same component it returns
// AlreadyJoined with no structural change. Otherwise it merges the two
// components by union-by-rank: the lower-rank root becomes a child of the
// higher-rank root; on equal rank, either may become the parent, and the
// new parent's rank increments by one.
//
// The winning root's highest summary becomes whichever of the two
// components' highest cells has the greater elevation (ties broken by
// smaller flat index) — this is the invariant the sweep engine's emission
// rule depends on.
//
// Complexity: amortized near-O(1).
func (f *Forest) Union(i, j int32) UnionResult {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return UnionResult{Outcome: AlreadyJoined}
	}

	var winner, loser int32
	switch {
	case f.rank[ri] > f.rank[rj]:
		winner, loser = ri, rj
	case f.rank[rj] > f.rank[ri]:
		winner, loser = rj, ri
	default:
		winner, loser = ri, rj
		f.rank[winner]++
	}
	f.parent[loser] = winner

	survivingHighest := f.higher(f.highest[winner], f.highest[loser])
	var absorbedHighest int32
	if survivingHighest == f.highest[winner] {
		absorbedHighest = f.highest[loser]
	} else {
		absorbedHighest = f.highest[winner]
	}
	f.highest[winner] = survivingHighest

	return UnionResult{
		Outcome:           Merged,
		Winner:            winner,
		Loser:             loser,
		SurvivingHighest:  survivingHighest,
		AbsorbedHighest:   absorbedHighest,
	}
}
