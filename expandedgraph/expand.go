package expandedgraph

import (
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
)

// Expanded is an expanded graph plus the bookkeeping needed to map its
// nodes and internal (separator-carrying) arcs back to the original
// graph's node ids.
type Expanded struct {
	Graph *graphcsr.Graph

	// InternalArc[v] is the arc id of v_in -> v_out in Graph, the one
	// arc whose presence in a reported cut means "v belongs to the
	// separator".
	InternalArc []int32
}

// In returns the expanded-graph node id of v's in-copy.
func In(v int32) int32 { return 2 * v }

// Out returns the expanded-graph node id of v's out-copy.
func Out(v int32) int32 { return 2*v + 1 }

// OriginalOf returns the original node id a given expanded-graph node
// id (either its in- or out-copy) was split from.
func OriginalOf(expandedNode int32) int32 { return expandedNode / 2 }

// crossArcMultiplicity is how many parallel unit-capacity copies of each
// Out(u) -> In(v) cross arc Build inserts. flowstate has no per-arc
// capacity beyond 1, so "infinite" capacity is simulated by replication:
// a vertex separator can never contain more than n nodes, so as long as
// this multiplicity exceeds n, a max flow computed over the expansion
// never has a reason to route through (and a min cut never has a reason
// to sever) a cross arc instead of the cheaper single-unit internal arc
// it would otherwise have to pay for at each split node.
func crossArcMultiplicity(n int) int { return n + 1 }

// Build constructs the node-split expansion of g: every node v becomes
// In(v) and Out(v) joined by a unit-weight internal arc pair, and every
// original arc u->v becomes crossArcMultiplicity(n) parallel copies of
// Out(u) -> In(v), each paired with an explicit In(v) -> Out(u) arc of
// its own so every cross arc has a genuine back arc (the reverse
// original arc v->u, processed on its own pass over a, produces its own
// Out(v) -> In(u) / In(u) -> Out(v) pair — a different pair of nodes
// entirely, so it cannot stand in as this one's back arc). Weight is
// carried over from the original arc on every copy, for pierce-rating
// policies that read arc weight; the replication simulates infinite
// capacity so the min cut always saturates exactly the intra-node arcs,
// never a cross arc.
//
// Complexity: O(n + m) in node/arc count, O((n + m) * n) in output size.
func Build(g *graphcsr.Graph) *Expanded {
	n := g.NodeCount()
	m := g.ArcCount()
	mult := crossArcMultiplicity(n)

	tail := make([]int32, 0, 2*m*mult+2*n)
	head := make([]int32, 0, 2*m*mult+2*n)
	weight := make([]int32, 0, 2*m*mult+2*n)
	internalArc := make([]int32, n)

	for v := int32(0); v < int32(n); v++ {
		tail = append(tail, In(v), Out(v))
		head = append(head, Out(v), In(v))
		weight = append(weight, 1, 1)
	}

	for a := 0; a < m; a++ {
		u, v := g.Tail(int32(a)), g.Head(int32(a))
		if u == v {
			continue
		}
		w := g.Weight(int32(a))
		for i := 0; i < mult; i++ {
			tail = append(tail, Out(u), In(v))
			head = append(head, In(v), Out(u))
			weight = append(weight, w, w)
		}
	}

	expanded, _ := graphcsr.Build(2*n, tail, head, weight)

	// Build regroups arcs by tail, so internal arc ids are looked up after
	// construction rather than taken from the input order.
	for v := int32(0); v < int32(n); v++ {
		for _, a := range expanded.OutArcs(In(v)) {
			if expanded.Head(a) == Out(v) {
				internalArc[v] = a
				break
			}
		}
	}

	return &Expanded{Graph: expanded, InternalArc: internalArc}
}

// ExpandPositions duplicates each original node's position onto both its
// In and Out copies, so cutterfactory.Build can seed geo-projection
// terminals directly over the expanded graph (it requires len(positions)
// == the graph's own node count). Returns nil if positions is nil.
func ExpandPositions(positions []geopos.Pos) []geopos.Pos {
	if positions == nil {
		return nil
	}
	out := make([]geopos.Pos, 2*len(positions))
	for v, p := range positions {
		out[In(int32(v))] = p
		out[Out(int32(v))] = p
	}

	return out
}

// SeparatorFromCutArcs filters cutArcs (as reported by a cutter.Cut over
// the expanded graph) down to the original nodes whose internal arc was
// cut, i.e. the vertex separator.
func (e *Expanded) SeparatorFromCutArcs(cutArcs []int32) []int32 {
	isInternal := make(map[int32]bool, len(e.InternalArc))
	for _, a := range e.InternalArc {
		isInternal[a] = true
	}

	var sep []int32
	for _, a := range cutArcs {
		if isInternal[a] {
			sep = append(sep, OriginalOf(e.Graph.Tail(a)))
		}
	}

	return sep
}
