package dissect

import (
	"testing"

	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func TestReduceDegree3IndependentSetEliminatesStarCenter(t *testing.T) {
	// node 0 has degree 3 (center), nodes 1,2,3 are otherwise unconnected leaves
	g, err := graphcsr.Build(4,
		[]int32{0, 0, 0, 1, 2, 3},
		[]int32{1, 2, 3, 0, 0, 0},
		nil)
	require.NoError(t, err)

	reduced, eliminated := reduceDegree3IndependentSet(g)

	require.Equal(t, []int32{0}, eliminated)
	require.Equal(t, 3, reduced.Graph.NodeCount())
	require.ElementsMatch(t, []int32{1, 2, 3}, reduced.Nodes)
	// the former leaves now form a triangle: every node has degree 2
	for v := 0; v < reduced.Graph.NodeCount(); v++ {
		require.Equal(t, 2, reduced.Graph.Degree(int32(v)))
	}
}

func TestReduceDegree3IndependentSetSkipsAdjacentCandidates(t *testing.T) {
	// two adjacent degree-3 nodes (0 and 1) sharing an edge: only the
	// first one scanned should enter the independent set
	g, err := graphcsr.Build(6,
		[]int32{0, 0, 0, 1, 1, 1},
		[]int32{1, 2, 3, 0, 4, 5},
		nil)
	require.NoError(t, err)

	_, eliminated := reduceDegree3IndependentSet(g)

	require.Len(t, eliminated, 1)
	require.Equal(t, int32(0), eliminated[0])
}

func TestReduceDegree3IndependentSetLeavesNonDegree3GraphUntouched(t *testing.T) {
	g := buildTestPath(t, 5) // every interior node has degree 2, not 3

	reduced, eliminated := reduceDegree3IndependentSet(g)

	require.Empty(t, eliminated)
	require.Equal(t, g.NodeCount(), reduced.Graph.NodeCount())
}
