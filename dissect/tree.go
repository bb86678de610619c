package dissect

import (
	"sort"

	"github.com/arborist-go/fcutter/graphcsr"
)

// isTree reports whether g (assumed connected, n >= 2) is a tree: exactly
// n-1 undirected edges, counted as m == 2*(n-1) arcs in a symmetric CSR
// graph.
func isTree(g *graphcsr.Graph) bool {
	n := g.NodeCount()
	if n <= 1 {
		return false
	}

	return g.ArcCount() == 2*(n-1)
}

// treeNodeRanking computes a nested-dissection order for a tree: leaves
// are repeatedly peeled in rounds (a node becomes peelable once at most
// one of its neighbors remains unpeeled), each node is assigned the
// round it was peeled in, and the returned order is every node id
// stably sorted by non-decreasing round. The tree's center (the one or
// two nodes every peeling round eventually isolates) always ends up
// last, since it has no neighbors left to decrement its degree until
// every other node is gone.
//
// Complexity: O(n).
func treeNodeRanking(g *graphcsr.Graph) []int32 {
	n := g.NodeCount()
	degree := make([]int32, n)
	for v := 0; v < n; v++ {
		degree[v] = int32(g.Degree(int32(v)))
	}

	rank := make([]int32, n)
	removed := make([]bool, n)
	remaining := n

	var frontier []int32
	for v := 0; v < n; v++ {
		if degree[v] <= 1 {
			frontier = append(frontier, int32(v))
		}
	}

	for round := int32(0); remaining > 0 && len(frontier) > 0; round++ {
		var next []int32
		for _, v := range frontier {
			if removed[v] {
				continue
			}
			removed[v] = true
			rank[v] = round
			remaining--

			for _, a := range g.OutArcs(v) {
				u := g.Head(a)
				if removed[u] {
					continue
				}
				degree[u]--
				if degree[u] == 1 {
					next = append(next, u)
				}
			}
		}
		frontier = next
	}

	order := make([]int32, n)
	for v := range order {
		order[v] = int32(v)
	}
	sort.SliceStable(order, func(i, j int) bool { return rank[order[i]] < rank[order[j]] })

	return order
}
