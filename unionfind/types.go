package unionfind

// Outcome classifies the result of a Union call.
type Outcome int

const (
	// AlreadyJoined means i and j were already in the same component;
	// no structural change was made.
	AlreadyJoined Outcome = iota
	// Merged means two distinct components were joined.
	Merged
)

// UnionResult is the full result of a Union call, sufficient for the
// sweep engine to decide whether to emit a prominence record.
type UnionResult struct {
	Outcome Outcome
	// Winner and Loser are the roots after the union (only meaningful when
	// Outcome == Merged); Winner is the surviving root, Loser's parent now
	// points at Winner.
	Winner, Loser int32
	// SurvivingHighest is the flat index of the higher-elevation of the two
	// components' highest-active-cell summaries — the value now stored at
	// highest[Winner]. AbsorbedHighest is the other one. Both are only
	// meaningful when Outcome == Merged.
	SurvivingHighest, AbsorbedHighest int32
}

// Forest is a disjoint-set forest over flat cell indices [0, N), augmented
// with a per-root "highest active cell" summary. parent is meaningful at
// every cell; rank and highest are meaningful only at roots; elev is a read-only
// reference to the grid's elevations, used solely to compare two
// candidate "highest" cells.
type Forest struct {
	parent  []int32
	rank    []uint8
	highest []int32
	elev    []int32
}

// New allocates a Forest over N = len(elev) cells. Every cell starts as its
// own singleton root with itself as its highest cell — this is vestigial
// until Activate is called on it, since inactive cells never participate
// in a Find/Union (the sweep only touches a cell after activating it).
//
// Complexity: O(N) time and memory.
func New(elev []int32) *Forest {
	n := len(elev)
	f := &Forest{
		parent:  make([]int32, n),
		rank:    make([]uint8, n),
		highest: make([]int32, n),
		elev:    elev,
	}
	for i := range f.parent {
		f.parent[i] = int32(i)
		f.highest[i] = int32(i)
	}
	return f
}
