package nodeset

import "github.com/arborist-go/fcutter/graphcsr"

// Set is an incrementally growable subset of a graph's node ids.
// The zero value is not usable; construct with New.
type Set struct {
	mode     SearchMode
	member   []bool
	count    int
	frontier []int32 // pending roots ("extra nodes")
	cursor   int     // BFS-only: read pointer into frontier
}

// New returns an empty Set over a graph with n nodes, using mode for Grow.
// Complexity: O(n).
func New(n int, mode SearchMode) *Set {
	return &Set{
		mode:   mode,
		member: make([]bool, n),
	}
}

// Contains reports whether v is a member. Complexity: O(1).
func (s *Set) Contains(v int32) bool { return s.member[v] }

// Size returns the current member count. Complexity: O(1).
func (s *Set) Size() int { return s.count }

// AddNode marks v as a member, without queuing it for expansion. Returns
// false if v was already a member. Complexity: O(1).
func (s *Set) AddNode(v int32) bool {
	if s.member[v] {
		return false
	}
	s.member[v] = true
	s.count++

	return true
}

// AddExtraNode marks v as a traversal root for the next Grow call. v should
// already be a member (typically added via AddNode first, or via Grow
// itself). Complexity: O(1) amortized.
func (s *Set) AddExtraNode(v int32) {
	s.frontier = append(s.frontier, v)
}

// ClearExtraNodes discards any pending, not-yet-expanded frontier entries.
// Complexity: O(1).
func (s *Set) ClearExtraNodes() {
	s.frontier = s.frontier[:0]
	s.cursor = 0
}

// ResetTo reinitializes the receiver's membership to match other's. When
// keepExtra is true the frontier is rebuilt from every member of other, so a
// subsequent Grow can still discover residual arcs newly opened by a flow
// change (used after augmenting flow: Reachable is collapsed back to
// Assimilated but must remain able to re-expand from it). When keepExtra is
// false the frontier is simply cleared.
// Complexity: O(n) if keepExtra, else O(1) beyond the membership copy.
func (s *Set) ResetTo(other *Set, keepExtra bool) {
	copy(s.member, other.member)
	s.count = other.count
	s.ClearExtraNodes()
	if keepExtra {
		for v := 0; v < len(other.member); v++ {
			if other.member[v] {
				s.frontier = append(s.frontier, int32(v))
			}
		}
	}
}

// Grow performs a single resumable traversal pass starting from the
// pending frontier. For each candidate arc a with Tail(a) already a member:
//   - shouldFollowArc(a) decides whether to traverse it at all (e.g. only
//     non-saturated residual arcs);
//   - if Head(a) is not yet a member, onNewArc(a) is invoked (may be nil),
//     Head(a) becomes a member and a new frontier root, and onNewNode(v) is
//     invoked; if onNewNode returns false, Grow stops immediately and
//     reports interrupted=true (used when the opposite side's assimilated
//     node is discovered — an augmenting path).
//
// Complexity: O(nodes and arcs touched in this pass).
func (s *Set) Grow(
	g *graphcsr.Graph,
	shouldFollowArc func(a int32) bool,
	onNewArc func(a int32),
	onNewNode func(v int32) bool,
) (interrupted bool) {
	switch s.mode {
	case BFS:
		for s.cursor < len(s.frontier) {
			u := s.frontier[s.cursor]
			s.cursor++
			if s.expand(g, u, shouldFollowArc, onNewArc, onNewNode) {
				return true
			}
		}
	default: // PseudoDFS
		for len(s.frontier) > 0 {
			u := s.frontier[len(s.frontier)-1]
			s.frontier = s.frontier[:len(s.frontier)-1]
			if s.expand(g, u, shouldFollowArc, onNewArc, onNewNode) {
				return true
			}
		}
	}

	return false
}

func (s *Set) expand(
	g *graphcsr.Graph,
	u int32,
	shouldFollowArc func(a int32) bool,
	onNewArc func(a int32),
	onNewNode func(v int32) bool,
) bool {
	for _, a := range g.OutArcs(u) {
		if shouldFollowArc != nil && !shouldFollowArc(a) {
			continue
		}
		v := g.Head(a)
		if s.member[v] {
			continue
		}
		if onNewArc != nil {
			onNewArc(a)
		}
		s.member[v] = true
		s.count++
		s.frontier = append(s.frontier, v)
		if onNewNode != nil && !onNewNode(v) {
			return true
		}
	}

	return false
}
