package graphcsr

// Graph is an immutable CSR-style directed graph. Zero value is not usable;
// construct with Build.
//
// Invariants (checked by Validate, not re-checked on every access):
//   - len(Tail) == len(Head) == len(Weight) == ArcCount().
//   - len(FirstOut) == NodeCount()+1, non-decreasing.
//   - arcs are grouped by Tail in FirstOut order (not necessarily sorted by
//     Head within a group unless SortArcsByTailThenHead was called).
//   - if BackArc is non-nil, it is a fixed-point-free involution satisfying
//     Tail[BackArc[a]] == Head[a] and Head[BackArc[a]] == Tail[a] for every a.
//
// All fields except backArc are set once by Build and never mutated
// afterwards; backArc is set by Build when the arcs admit a pairing, or
// later by ComputeBackArc (which IsSimpleSymmetric may call). Once BackArc
// is in place a *Graph may be shared read-only across goroutines without
// synchronization — every recursion level of the nested-dissection driver hands the same
// subgraph to many concurrent cutters.
type Graph struct {
	n int

	tail   []int32
	head   []int32
	weight []int32

	firstOut []int32 // length n+1

	arcIDs []int32 // arcIDs[a] == a; precomputed so OutArcs can slice without allocating

	backArc []int32 // nil unless Build or ComputeBackArc found a pairing
}

// NodeCount returns the number of vertices. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// ArcCount returns the number of directed arcs. Complexity: O(1).
func (g *Graph) ArcCount() int { return len(g.tail) }

// Tail returns the tail endpoint of arc a. Complexity: O(1).
func (g *Graph) Tail(a int32) int32 { return g.tail[a] }

// Head returns the head endpoint of arc a. Complexity: O(1).
func (g *Graph) Head(a int32) int32 { return g.head[a] }

// Weight returns the weight of arc a. Complexity: O(1).
func (g *Graph) Weight(a int32) int32 { return g.weight[a] }

// HasBackArc reports whether BackArc(a) is available (i.e. Build or a later
// ComputeBackArc call paired every arc of this Graph).
func (g *Graph) HasBackArc() bool { return g.backArc != nil }

// BackArc returns the arc id of a's antiparallel twin. Panics if
// HasBackArc() is false; callers must call ComputeBackArc first.
// Complexity: O(1).
func (g *Graph) BackArc(a int32) int32 { return g.backArc[a] }

// OutArcs returns the arc ids with Tail(a) == v, in the fixed order they
// were stored at construction (or imposed by SortArcsByTailThenHead). The
// returned slice aliases internal storage and must not be mutated or
// retained past the next topology-changing call.
// Complexity: O(1).
func (g *Graph) OutArcs(v int32) []int32 {
	lo, hi := g.firstOut[v], g.firstOut[v+1]

	return g.arcIDs[lo:hi]
}

// Degree returns deg(v) = out-degree (equals in-degree once the graph is
// symmetric). Complexity: O(1).
func (g *Graph) Degree(v int32) int {
	return int(g.firstOut[v+1] - g.firstOut[v])
}
