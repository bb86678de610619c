package dissect

import "github.com/arborist-go/fcutter/graphcsr"

// reduceDegree3IndependentSet finds a maximal independent set of degree-3
// nodes (no two selected nodes share an edge) and eliminates each one by
// replacing its three incident edges with a triangle directly connecting
// its three neighbors, then drops the eliminated node from the graph
// entirely (it has no arcs left). Eliminated nodes never separate any
// pair of surviving nodes from each other, so they are safe to append in
// any order at the very end of whatever order the reduced graph produces.
//
// Complexity: O(n + m).
func reduceDegree3IndependentSet(g *graphcsr.Graph) (subgraph, []int32) {
	n := g.NodeCount()
	adj := make([]map[int32]int32, n)
	for v := range adj {
		adj[v] = make(map[int32]int32)
	}
	for v := int32(0); v < int32(n); v++ {
		for _, a := range g.OutArcs(v) {
			h := g.Head(a)
			if h == v {
				continue
			}
			if w, ok := adj[v][h]; !ok || g.Weight(a) < w {
				adj[v][h] = g.Weight(a)
			}
		}
	}

	inSet := make([]bool, n)
	for v := 0; v < n; v++ {
		if len(adj[v]) != 3 {
			continue
		}
		neighborSelected := false
		for u := range adj[v] {
			if inSet[u] {
				neighborSelected = true

				break
			}
		}
		if !neighborSelected {
			inSet[v] = true
		}
	}

	removed := make([]bool, n)
	var eliminated []int32
	for v := 0; v < n; v++ {
		if !inSet[v] {
			continue
		}
		var nbrs [3]int32
		i := 0
		for u := range adj[int32(v)] {
			nbrs[i] = u
			i++
		}
		x, y, z := nbrs[0], nbrs[1], nbrs[2]

		wxy := adj[int32(v)][x] + adj[int32(v)][y]
		wyz := adj[int32(v)][y] + adj[int32(v)][z]
		wzx := adj[int32(v)][z] + adj[int32(v)][x]

		delete(adj[x], int32(v))
		delete(adj[y], int32(v))
		delete(adj[z], int32(v))
		addTriangleEdge(adj, x, y, wxy)
		addTriangleEdge(adj, y, z, wyz)
		addTriangleEdge(adj, z, x, wzx)

		adj[int32(v)] = make(map[int32]int32)
		removed[v] = true
		eliminated = append(eliminated, int32(v))
	}

	kept := make([]int32, 0, n)
	local := make(map[int32]int32, n)
	for v := int32(0); v < int32(n); v++ {
		if removed[v] {
			continue
		}
		local[v] = int32(len(kept))
		kept = append(kept, v)
	}

	var tail, head, weight []int32
	for _, v := range kept {
		for u, w := range adj[v] {
			tail = append(tail, local[v])
			head = append(head, local[u])
			weight = append(weight, w)
		}
	}

	reducedGraph, _ := graphcsr.Build(len(kept), tail, head, weight)

	return subgraph{Graph: reducedGraph, Nodes: kept}, eliminated
}

func addTriangleEdge(adj []map[int32]int32, u, w, weight int32) {
	if cur, ok := adj[u][w]; !ok || weight < cur {
		adj[u][w] = weight
		adj[w][u] = weight
	}
}
