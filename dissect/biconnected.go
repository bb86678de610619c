package dissect

import (
	"sort"

	"github.com/arborist-go/fcutter/graphcsr"
)

// biconnComponent is one biconnected component: the nodes it touches and
// how many undirected edges it is made of (used to rank components by
// "size" the same way min_fill_in.h's
// compute_graph_order_with_largest_biconnected_component_at_the_end does
// — "large in terms of many arcs", not node count).
type biconnComponent struct {
	Nodes     []int32
	EdgeCount int
}

type bcEdge struct{ u, v int32 }

// biconnectedComponents partitions g's undirected edges (g is assumed
// connected) into biconnected components via Tarjan's low-link
// algorithm, run iteratively with an explicit stack to avoid recursion
// depth blowing up on road-network-scale graphs. Grounded on
// original_source/min_fill_in.h's compute_biconnected_components call;
// that routine's own body is not part of this pack's filtered source
// tree, so the edge-stack low-link construction here is the standard
// one the literature (and that call site) describes.
//
// Complexity: O(n + m).
func biconnectedComponents(g *graphcsr.Graph) []biconnComponent {
	n := g.NodeCount()
	adj := make([][]int32, n)
	for v := int32(0); v < int32(n); v++ {
		for _, a := range g.OutArcs(v) {
			if h := g.Head(a); h != v {
				adj[v] = append(adj[v], h)
			}
		}
	}

	disc := make([]int32, n)
	low := make([]int32, n)
	for i := range disc {
		disc[i] = -1
	}

	type frame struct {
		u, parent int32
		i         int
	}

	var counter int32
	var edgeStack []bcEdge
	var components []biconnComponent

	for s := int32(0); s < int32(n); s++ {
		if disc[s] != -1 {
			continue
		}
		disc[s], low[s] = counter, counter
		counter++
		stack := []frame{{u: s, parent: -1}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.u
			if top.i >= len(adj[u]) {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					continue
				}
				p := stack[len(stack)-1].u
				if low[u] < low[p] {
					low[p] = low[u]
				}
				if low[u] >= disc[p] {
					if comp := popComponent(&edgeStack, p, u); len(comp.Nodes) > 0 {
						components = append(components, comp)
					}
				}
				continue
			}

			v := adj[u][top.i]
			top.i++
			if v == top.parent {
				continue
			}
			if disc[v] == -1 {
				disc[v], low[v] = counter, counter
				counter++
				edgeStack = append(edgeStack, bcEdge{u, v})
				stack = append(stack, frame{u: v, parent: u})
			} else if disc[v] < disc[u] {
				edgeStack = append(edgeStack, bcEdge{u, v})
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
			}
		}
	}

	return components
}

// popComponent pops edgeStack down to and including the edge (p, u),
// returning the popped edges as one biconnected component.
func popComponent(edgeStack *[]bcEdge, p, u int32) biconnComponent {
	s := *edgeStack
	idx := len(s)
	for idx > 0 {
		idx--
		if s[idx].u == p && s[idx].v == u {
			break
		}
	}
	comp := s[idx:]
	*edgeStack = s[:idx]

	nodeSet := make(map[int32]bool, 2*len(comp))
	for _, e := range comp {
		nodeSet[e.u] = true
		nodeSet[e.v] = true
	}
	nodes := make([]int32, 0, len(nodeSet))
	for v := range nodeSet {
		nodes = append(nodes, v)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return biconnComponent{Nodes: nodes, EdgeCount: len(comp)}
}

// reduceLargestBiconnectedComponent finds g's biconnected component with
// the most edges and peels off every node exclusive to it — a node
// touched by no other biconnected component, i.e. not an articulation
// point bridging the rest of the graph — returning the subgraph induced
// on everything else. A peeled node never separates any pair of
// surviving nodes from each other (its only path out of the graph runs
// through the component's articulation points, which stay behind), so
// appending the peeled nodes at the very end of whatever order the
// reduced graph produces is always valid, the same "safe to eliminate
// late" argument contractDegree2Chains and reduceDegree3IndependentSet
// use for single nodes, here applied to a whole component at once.
//
// Returns an empty subgraph and nil if g has only one biconnected
// component (nothing to peel) or the largest component is made entirely
// of articulation points (degenerate, shouldn't occur for n > 2).
//
// Complexity: O(n + m).
func reduceLargestBiconnectedComponent(g *graphcsr.Graph) (subgraph, []int32) {
	comps := biconnectedComponents(g)
	if len(comps) <= 1 {
		return subgraph{}, nil
	}

	best := 0
	for i, c := range comps {
		if c.EdgeCount > comps[best].EdgeCount {
			best = i
		}
	}

	n := g.NodeCount()
	membershipCount := make([]int, n)
	for _, c := range comps {
		for _, v := range c.Nodes {
			membershipCount[v]++
		}
	}

	var exclusive []int32
	for _, v := range comps[best].Nodes {
		if membershipCount[v] == 1 {
			exclusive = append(exclusive, v)
		}
	}
	if len(exclusive) == 0 {
		return subgraph{}, nil
	}

	excl := make(map[int32]bool, len(exclusive))
	for _, v := range exclusive {
		excl[v] = true
	}

	kept := make([]int32, 0, n-len(exclusive))
	for v := int32(0); v < int32(n); v++ {
		if !excl[v] {
			kept = append(kept, v)
		}
	}

	return induce(g, kept), exclusive
}
