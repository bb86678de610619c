package dissect

import "github.com/arborist-go/fcutter/graphcsr"

// contraction records a degree-2 node removed from a subgraph during
// reduction, and the two neighbors (named in the same id space as the
// graph contractDegree2Chains was given) it used to sit between, so its
// position in the final order can be reinserted once its two neighbors'
// relative order is known.
type contraction struct {
	node        int32
	left, right int32
}

// contractDegree2Chains repeatedly removes every degree-2 node,
// replacing each pair of arcs v-u, v-w with a direct u-w arc carrying
// their combined weight (when u and w are already adjacent, as in a
// triangle, the lighter of the two u-w weights is kept), and returns the remaining graph
// reindexed to 0..k-1 (k = kept node count). This never changes the
// graph's vertex connectivity, so running nested dissection on the
// reduced graph and reinserting every contracted node immediately after
// the later-positioned of its two former neighbors in the final order
// yields a valid elimination order for the original graph.
//
// Complexity: O(n + m) amortized across all rounds.
func contractDegree2Chains(g *graphcsr.Graph) (subgraph, []contraction) {
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

	removed := make([]bool, n)
	var contractions []contraction

	progress := true
	for progress {
		progress = false
		for v := range adj {
			if removed[v] || len(adj[v]) != 2 {
				continue
			}
			var nbrs [2]int32
			i := 0
			for u := range adj[v] {
				nbrs[i] = u
				i++
			}
			u, w := nbrs[0], nbrs[1]
			if u == w {
				continue // a 2-cycle, not a real chain link
			}

			combined := adj[v][u] + adj[v][w]

			delete(adj[u], int32(v))
			delete(adj[w], int32(v))
			if cur, ok := adj[u][w]; !ok || combined < cur {
				adj[u][w] = combined
				adj[w][u] = combined
			}
			delete(adj[v], u)
			delete(adj[v], w)
			removed[v] = true
			contractions = append(contractions, contraction{node: int32(v), left: u, right: w})
			progress = true
		}
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

	return subgraph{Graph: reducedGraph, Nodes: kept}, contractions
}

// reinsertContractions expands order (already translated to the id
// space contractions' node/left/right fields are recorded in) by
// inserting each contracted node immediately after the later-positioned
// of its two former neighbors. Multiple passes handle chains of
// contracted nodes whose neighbors are themselves contracted nodes not
// yet reinserted.
func reinsertContractions(order []int32, contractions []contraction) []int32 {
	if len(contractions) == 0 {
		return order
	}

	pos := make(map[int32]int, len(order)+len(contractions))
	out := append([]int32(nil), order...)
	for i, v := range out {
		pos[v] = i
	}

	pending := contractions
	for len(pending) > 0 {
		var next []contraction
		progressed := false
		for _, c := range pending {
			lp, lok := pos[c.left]
			rp, rok := pos[c.right]
			if !lok || !rok {
				next = append(next, c)
				continue
			}
			insertAfter := lp
			if rp > lp {
				insertAfter = rp
			}
			out = insertSliceAt(out, insertAfter+1, c.node)
			for v, p := range pos {
				if p > insertAfter {
					pos[v] = p + 1
				}
			}
			pos[c.node] = insertAfter + 1
			progressed = true
		}
		if !progressed {
			break // a neighbor was itself removed without ever reinserting; leave remaining nodes unplaced
		}
		pending = next
	}

	return out
}

func insertSliceAt(s []int32, idx int, v int32) []int32 {
	s = append(s, 0)
	copy(s[idx+1:], s[idx:])
	s[idx] = v

	return s
}
