package graphcsr

// Symmetrize returns a new Graph with a reverse arc added for every arc that
// lacks one. Arc ids of the original arcs are not preserved: Build regroups
// all arcs by tail, so an original arc moves to a higher id whenever an added
// reverse arc has a smaller tail than its own, and arc ids cached against g
// do not in general address the same arcs in the result. Original arcs keep
// their relative order within each tail group. The result is not
// guaranteed to be simple; call Deduplicate afterwards if needed.
//
// Complexity: O(m) expected (hash-map grouping by (tail,head)).
func (g *Graph) Symmetrize() *Graph {
	type key struct{ u, v int32 }

	present := make(map[key]bool, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		present[key{g.tail[a], g.head[a]}] = true
	}

	tail := append([]int32(nil), g.tail...)
	head := append([]int32(nil), g.head...)
	weight := append([]int32(nil), g.weight...)

	for a := 0; a < len(g.tail); a++ {
		u, v := g.tail[a], g.head[a]
		if u == v {
			continue // loops are their own reverse; nothing to add
		}
		if !present[key{v, u}] {
			tail = append(tail, v)
			head = append(head, u)
			weight = append(weight, g.weight[a])
			present[key{v, u}] = true
		}
	}

	out, _ := Build(g.n, tail, head, weight)

	return out
}

// Deduplicate returns a new Graph with self-loops removed and parallel arcs
// collapsed to a single representative of minimum weight. Required before
// any cutter entry point per the graph-container contract.
//
// Complexity: O(m) expected.
func (g *Graph) Deduplicate() *Graph {
	type key struct{ u, v int32 }

	best := make(map[key]int32, g.ArcCount())
	order := make([]key, 0, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		u, v := g.tail[a], g.head[a]
		if u == v {
			continue
		}
		k := key{u, v}
		w := g.weight[a]
		if cur, ok := best[k]; !ok {
			best[k] = w
			order = append(order, k)
		} else if w < cur {
			best[k] = w
		}
	}

	tail := make([]int32, 0, len(order))
	head := make([]int32, 0, len(order))
	weight := make([]int32, 0, len(order))
	for _, k := range order {
		tail = append(tail, k.u)
		head = append(head, k.v)
		weight = append(weight, best[k])
	}

	out, _ := Build(g.n, tail, head, weight)

	return out
}

// WithVirtualTerminal returns a new Graph with one extra node appended
// (id n) connected by a unit-weight arc pair to every node in members,
// plus the appended node's id. Used to reduce a multi-source or
// multi-sink max-flow query (e.g. inertial flow's geometric source/sink
// sets) to the single-terminal form a cutter expects.
//
// Complexity: O(n + m + len(members)).
func (g *Graph) WithVirtualTerminal(members []int32) (*Graph, int32) {
	terminal := int32(g.n)

	tail := append([]int32(nil), g.tail...)
	head := append([]int32(nil), g.head...)
	weight := append([]int32(nil), g.weight...)

	for _, v := range members {
		tail = append(tail, terminal, v)
		head = append(head, v, terminal)
		weight = append(weight, 1, 1)
	}

	out, _ := Build(g.n+1, tail, head, weight)

	return out, terminal
}

// IsSimpleSymmetric reports whether the graph is currently loop-free,
// parallel-arc-free, and admits a back-arc permutation — the precondition
// for handing the graph to a cutter. Complexity: O(m).
func (g *Graph) IsSimpleSymmetric() bool {
	type key struct{ u, v int32 }

	seen := make(map[key]bool, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		k := key{g.tail[a], g.head[a]}
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	if g.HasBackArc() {
		return true
	}
	err := g.ComputeBackArc()

	return err == nil
}

// Validate checks the structural invariants documented on Graph and returns
// the first violation found, or nil. Complexity: O(n + m).
func (g *Graph) Validate() error {
	m := g.ArcCount()
	if len(g.head) != m || len(g.weight) != m {
		return ErrLengthMismatch
	}
	if len(g.firstOut) != g.n+1 {
		return ErrLengthMismatch
	}
	for v := 0; v < g.n; v++ {
		if g.firstOut[v] > g.firstOut[v+1] {
			return ErrNodeOutOfRange
		}
	}
	for a := 0; a < m; a++ {
		if g.tail[a] < 0 || int(g.tail[a]) >= g.n || g.head[a] < 0 || int(g.head[a]) >= g.n {
			return ErrNodeOutOfRange
		}
	}
	if g.backArc != nil {
		for a := 0; a < m; a++ {
			b := g.backArc[a]
			if int(b) < 0 || int(b) >= m {
				return ErrArcOutOfRange
			}
			if g.tail[b] != g.head[a] || g.head[b] != g.tail[a] {
				return ErrAsymmetric
			}
		}
	}

	return nil
}
