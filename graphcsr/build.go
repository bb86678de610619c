package graphcsr

import "sort"

// Build constructs a Graph with n vertices from parallel tail/head/weight
// arrays describing m directed arcs. Arcs need not arrive sorted; Build
// performs a stable counting sort on Tail so the CSR offsets can be formed,
// then attaches BackArc if the input is loop-free and every arc can be
// paired with a reverse arc (callers that need Symmetrize/Deduplicate first should call them before
// relying on BackArc/HasBackArc).
//
// weight may be nil, in which case every arc gets weight 1.
//
// Complexity: O(n + m).
func Build(n int, tail, head, weight []int32) (*Graph, error) {
	m := len(tail)
	if len(head) != m {
		return nil, ErrLengthMismatch
	}
	if weight != nil && len(weight) != m {
		return nil, ErrLengthMismatch
	}
	for _, v := range tail {
		if v < 0 || int(v) >= n {
			return nil, ErrNodeOutOfRange
		}
	}
	for _, v := range head {
		if v < 0 || int(v) >= n {
			return nil, ErrNodeOutOfRange
		}
	}
	if weight != nil {
		for _, w := range weight {
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	// Counting sort by tail: count[v] = out-degree of v, then prefix-sum
	// into firstOut, then scatter arcs into their slot using a cursor copy
	// of firstOut so the original per-vertex insertion order is preserved
	// (stable w.r.t. input order within each tail group).
	firstOut := make([]int32, n+1)
	for _, v := range tail {
		firstOut[v+1]++
	}
	for v := 0; v < n; v++ {
		firstOut[v+1] += firstOut[v]
	}

	outTail := make([]int32, m)
	outHead := make([]int32, m)
	outWeight := make([]int32, m)
	cursor := make([]int32, n)
	copy(cursor, firstOut[:n])
	for a := 0; a < m; a++ {
		v := tail[a]
		slot := cursor[v]
		cursor[v]++
		outTail[slot] = tail[a]
		outHead[slot] = head[a]
		if weight != nil {
			outWeight[slot] = weight[a]
		} else {
			outWeight[slot] = 1
		}
	}

	arcIDs := make([]int32, m)
	for a := range arcIDs {
		arcIDs[a] = int32(a)
	}

	g := &Graph{
		n:        n,
		tail:     outTail,
		head:     outHead,
		weight:   outWeight,
		firstOut: firstOut,
		arcIDs:   arcIDs,
	}

	// Best-effort: if the input is already symmetric and loop-free, wire up
	// BackArc so callers that built a clean graph don't need a second pass.
	if back, err := computeBackArc(g); err == nil {
		g.backArc = back
	}

	return g, nil
}

// SortArcsByTailThenHead returns a new Graph whose arcs are renumbered so
// that, within each tail's group, arcs are ordered by increasing Head. The
// old BackArc is not carried over; Build attaches a fresh one to the new
// Graph when its arcs still pair up (check HasBackArc).
//
// Complexity: O(m log m).
func (g *Graph) SortArcsByTailThenHead() *Graph {
	m := g.ArcCount()
	order := make([]int32, m)
	for a := range order {
		order[a] = int32(a)
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai, aj := order[i], order[j]
		if g.tail[ai] != g.tail[aj] {
			return g.tail[ai] < g.tail[aj]
		}
		return g.head[ai] < g.head[aj]
	})

	tail := make([]int32, m)
	head := make([]int32, m)
	weight := make([]int32, m)
	for newID, oldID := range order {
		tail[newID] = g.tail[oldID]
		head[newID] = g.head[oldID]
		weight[newID] = g.weight[oldID]
	}

	out, _ := Build(g.n, tail, head, weight)

	return out
}

// computeBackArc attempts to pair every arc with its reverse twin by
// grouping arcs into a map keyed by (tail,head). Parallel arcs are paired
// one-to-one in arc-id order with the first unused reverse arc. It fails
// with ErrLoop on a self-loop and with ErrAsymmetric if any arc is left
// without a partner.
func computeBackArc(g *Graph) ([]int32, error) {
	type key struct{ u, v int32 }

	index := make(map[key][]int32, g.ArcCount())
	for a := int32(0); a < int32(g.ArcCount()); a++ {
		k := key{g.tail[a], g.head[a]}
		index[k] = append(index[k], a)
	}

	back := make([]int32, g.ArcCount())
	used := make([]bool, g.ArcCount())
	for a := int32(0); a < int32(g.ArcCount()); a++ {
		if used[a] {
			continue
		}
		if g.tail[a] == g.head[a] {
			return nil, ErrLoop
		}
		k := key{g.head[a], g.tail[a]}
		candidates := index[k]
		var partner int32 = -1
		for _, c := range candidates {
			if !used[c] {
				partner = c
				break
			}
		}
		if partner < 0 {
			return nil, ErrAsymmetric
		}
		back[a] = partner
		back[partner] = a
		used[a] = true
		used[partner] = true
	}

	return back, nil
}

// ComputeBackArc recomputes and attaches the back-arc permutation, or
// returns ErrAsymmetric / ErrLoop if the graph does not admit one.
// Complexity: O(m).
func (g *Graph) ComputeBackArc() error {
	back, err := computeBackArc(g)
	if err != nil {
		return err
	}
	g.backArc = back

	return nil
}
