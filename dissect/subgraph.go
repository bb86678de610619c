package dissect

import "github.com/arborist-go/fcutter/graphcsr"

// subgraph is an induced subgraph of some parent graph, together with
// the mapping back to the parent's node ids (Nodes[i] is the parent id
// of local node i).
type subgraph struct {
	Graph *graphcsr.Graph
	Nodes []int32
}

// induce builds the induced subgraph of g on nodes, reindexed to
// 0..len(nodes)-1 in the given order. Complexity: O(n + m).
func induce(g *graphcsr.Graph, nodes []int32) subgraph {
	local := make(map[int32]int32, len(nodes))
	for i, v := range nodes {
		local[v] = int32(i)
	}

	var tail, head, weight []int32
	for i, v := range nodes {
		for _, a := range g.OutArcs(v) {
			h := g.Head(a)
			if lh, ok := local[h]; ok {
				tail = append(tail, int32(i))
				head = append(head, lh)
				weight = append(weight, g.Weight(a))
			}
		}
	}

	out, _ := graphcsr.Build(len(nodes), tail, head, weight)

	return subgraph{Graph: out, Nodes: nodes}
}

// toParent translates a slice of local node ids back to the parent
// graph's ids.
func (s subgraph) toParent(localOrder []int32) []int32 {
	out := make([]int32, len(localOrder))
	for i, v := range localOrder {
		out[i] = s.Nodes[v]
	}

	return out
}
