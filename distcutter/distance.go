package distcutter

import (
	"container/heap"

	"github.com/arborist-go/fcutter/graphcsr"
)

// hopDistances runs unweighted BFS from root over g, returning per-node
// hop distances; unreached nodes carry distance -1. Complexity: O(n+m).
func hopDistances(g *graphcsr.Graph, root int32) []int32 {
	n := g.NodeCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[root] = 0
	queue := []int32{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range g.OutArcs(u) {
			v := g.Head(a)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// weightDistances runs Dijkstra from root over g using non-negative arc
// weights, returning per-node shortest weighted distances; unreached
// nodes carry distance -1. Complexity: O((n+m) log n).
func weightDistances(g *graphcsr.Graph, root int32) []int32 {
	n := g.NodeCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[root] = 0

	pq := &distHeap{{node: root, dist: 0}}
	visited := make([]bool, n)
	for pq.Len() > 0 {
		top := heap.Pop(pq).(distItem)
		u := top.node
		if visited[u] {
			continue
		}
		visited[u] = true
		for _, a := range g.OutArcs(u) {
			v := g.Head(a)
			if visited[v] {
				continue
			}
			nd := dist[u] + g.Weight(a)
			if dist[v] < 0 || nd < dist[v] {
				dist[v] = nd
				heap.Push(pq, distItem{node: v, dist: nd})
			}
		}
	}

	return dist
}

// terminalSetDistances is the multi-source analogue of hopDistances: every
// node's hop distance to the nearest of roots (labelDistances passes a
// prefix or a suffix of the terminal's node order). Complexity: O(n+m).
func terminalSetDistances(g *graphcsr.Graph, roots []int32) []int32 {
	n := g.NodeCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	var queue []int32
	for _, r := range roots {
		if dist[r] < 0 {
			dist[r] = 0
			queue = append(queue, r)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range g.OutArcs(u) {
			v := g.Head(a)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

type distItem struct {
	node int32
	dist int32
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
