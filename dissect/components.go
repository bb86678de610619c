package dissect

import "github.com/arborist-go/fcutter/graphcsr"

// connectedComponents partitions g's nodes into connected components via
// BFS, returning each as a list of parent-graph node ids. Complexity:
// O(n + m).
func connectedComponents(g *graphcsr.Graph) [][]int32 {
	n := g.NodeCount()
	visited := make([]bool, n)
	var components [][]int32

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		var comp []int32
		queue := []int32{int32(s)}
		visited[s] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, a := range g.OutArcs(u) {
				v := g.Head(a)
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		components = append(components, comp)
	}

	return components
}

// isTrivial reports whether g is small or structured enough that no
// separator search is worthwhile: a singleton, an edgeless graph, a
// clique (every pair adjacent), or a tree. Callers that reach this
// point already know g is connected (orderSubgraph dispatches
// disconnected subgraphs to orderComponents first).
func isTrivial(g *graphcsr.Graph) bool {
	n := g.NodeCount()
	if n <= 1 {
		return true
	}
	if g.ArcCount() == 0 {
		return true
	}
	if isClique(g) {
		return true
	}

	return isTree(g)
}

func isClique(g *graphcsr.Graph) bool {
	n := g.NodeCount()
	want := n - 1
	for v := 0; v < n; v++ {
		if g.Degree(int32(v)) != want {
			return false
		}
	}

	return true
}
