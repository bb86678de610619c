package nodeset_test

import (
	"testing"

	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/arborist-go/fcutter/nodeset"
	"github.com/stretchr/testify/require"
)

func pathGraph(t *testing.T) *graphcsr.Graph {
	t.Helper()
	// 0-1-2-3 undirected path.
	tail := []int32{0, 1, 1, 2, 2, 3}
	head := []int32{1, 0, 2, 1, 3, 2}
	g, err := graphcsr.Build(4, tail, head, nil)
	require.NoError(t, err)

	return g
}

func followAll(int32) bool { return true }

func TestGrowBFSVisitsAllReachable(t *testing.T) {
	g := pathGraph(t)
	s := nodeset.New(g.NodeCount(), nodeset.BFS)
	s.AddNode(0)
	s.AddExtraNode(0)

	interrupted := s.Grow(g, followAll, nil, nil)
	require.False(t, interrupted)
	require.Equal(t, 4, s.Size())
	for v := int32(0); v < 4; v++ {
		require.True(t, s.Contains(v))
	}
}

func TestGrowInterruptsOnNewNodeFalse(t *testing.T) {
	g := pathGraph(t)
	s := nodeset.New(g.NodeCount(), nodeset.PseudoDFS)
	s.AddNode(0)
	s.AddExtraNode(0)

	var seen []int32
	interrupted := s.Grow(g, followAll, nil, func(v int32) bool {
		seen = append(seen, v)
		return v != 2 // stop once node 2 is discovered
	})
	require.True(t, interrupted)
	require.Contains(t, seen, int32(2))
	require.Less(t, s.Size(), 4)
}

func TestGrowIsResumableAcrossCalls(t *testing.T) {
	g := pathGraph(t)
	s := nodeset.New(g.NodeCount(), nodeset.BFS)
	s.AddNode(0)
	s.AddExtraNode(0)

	// First pass only explores node 0's neighbors, since we stop as soon as
	// a node beyond 0 is discovered and then the caller resumes later.
	first := true
	s.Grow(g, followAll, nil, func(v int32) bool {
		if first {
			first = false
			return false
		}
		return true
	})
	require.Equal(t, 2, s.Size()) // 0 and 1

	// Re-queue remaining frontier members and continue.
	s.AddExtraNode(1)
	s.Grow(g, followAll, nil, nil)
	require.Equal(t, 4, s.Size())
}

func TestResetToCopiesMembership(t *testing.T) {
	assimilated := nodeset.New(4, nodeset.PseudoDFS)
	assimilated.AddNode(0)
	assimilated.AddNode(1)

	reachable := nodeset.New(4, nodeset.PseudoDFS)
	reachable.AddNode(0)
	reachable.AddNode(1)
	reachable.AddNode(2)

	reachable.ResetTo(assimilated, false)
	require.Equal(t, 2, reachable.Size())
	require.False(t, reachable.Contains(2))
	require.True(t, reachable.Contains(0))
	require.True(t, reachable.Contains(1))
}
