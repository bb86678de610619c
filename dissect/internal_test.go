package dissect

import (
	"testing"

	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func buildTestPath(t *testing.T, n int) *graphcsr.Graph {
	t.Helper()
	var tail, head []int32
	for v := 0; v < n-1; v++ {
		tail = append(tail, int32(v), int32(v+1))
		head = append(head, int32(v+1), int32(v))
	}
	g, err := graphcsr.Build(n, tail, head, nil)
	require.NoError(t, err)

	return g
}

func TestIsTrivialDetectsSingletonEdgelessCliqueAndTree(t *testing.T) {
	single, err := graphcsr.Build(1, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, isTrivial(single))

	edgeless, err := graphcsr.Build(4, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, isTrivial(edgeless))

	require.True(t, isTrivial(buildTestPath(t, 6)))

	clique, err := graphcsr.Build(4, []int32{0, 0, 0, 1, 1, 2}, []int32{1, 2, 3, 2, 3, 3}, nil)
	require.NoError(t, err)
	require.True(t, isTrivial(clique.Symmetrize()))
}

func TestIsTrivialRejectsACycle(t *testing.T) {
	var tail, head []int32
	for v := 0; v < 6; v++ {
		w := (v + 1) % 6
		tail = append(tail, int32(v), int32(w))
		head = append(head, int32(w), int32(v))
	}
	g, err := graphcsr.Build(6, tail, head, nil)
	require.NoError(t, err)
	require.False(t, isTrivial(g))
}

func TestTreeNodeRankingPeelsLeavesFirstCenterLast(t *testing.T) {
	g := buildTestPath(t, 5) // 0-1-2-3-4
	require.True(t, isTree(g))

	order := treeNodeRanking(g)
	assertIsPermutationLocal(t, order, 5)
	require.Equal(t, []int32{0, 4, 1, 3, 2}, order)
}

func TestTreeNodeRankingOnStarPutsHubLast(t *testing.T) {
	// a star: center 0 connected to leaves 1,2,3,4
	tail := []int32{0, 0, 0, 0}
	head := []int32{1, 2, 3, 4}
	g, err := graphcsr.Build(5, append(tail, head...), append(head, tail...), nil)
	require.NoError(t, err)
	require.True(t, isTree(g))

	order := treeNodeRanking(g)
	assertIsPermutationLocal(t, order, 5)
	require.Equal(t, int32(0), order[len(order)-1])
}

func TestIsTreeRejectsCliqueAndCycle(t *testing.T) {
	clique, err := graphcsr.Build(4, []int32{0, 0, 0, 1, 1, 2}, []int32{1, 2, 3, 2, 3, 3}, nil)
	require.NoError(t, err)
	require.False(t, isTree(clique.Symmetrize()))

	var tail, head []int32
	for v := 0; v < 6; v++ {
		w := (v + 1) % 6
		tail = append(tail, int32(v), int32(w))
		head = append(head, int32(w), int32(v))
	}
	cycle, err := graphcsr.Build(6, tail, head, nil)
	require.NoError(t, err)
	require.False(t, isTree(cycle))
}

func TestReduceLargestBiconnectedComponentPeelsLargerBlock(t *testing.T) {
	// triangle 0-1-2 attached via articulation node 2 to a 4-cycle 2-3-4-5;
	// the cycle has more edges than the triangle, so it's "largest".
	tail := []int32{0, 1, 2, 2, 3, 4, 5}
	head := []int32{1, 2, 0, 3, 4, 5, 2}
	full := append(append([]int32{}, tail...), head...)
	fullRev := append(append([]int32{}, head...), tail...)
	g, err := graphcsr.Build(6, full, fullRev, nil)
	require.NoError(t, err)

	restSub, eliminated := reduceLargestBiconnectedComponent(g)
	require.ElementsMatch(t, []int32{3, 4, 5}, eliminated)
	require.ElementsMatch(t, []int32{0, 1, 2}, restSub.Nodes)
}

func TestReduceLargestBiconnectedComponentOnATreePeelsOneLeafBlock(t *testing.T) {
	// a tree's edges are all bridges, so every edge is its own
	// (tied, size-1) biconnected component; the reduction still peels
	// off one leaf-side block, it just has no cycle structure to favor.
	g := buildTestPath(t, 4) // 0-1-2-3
	restSub, eliminated := reduceLargestBiconnectedComponent(g)
	require.Len(t, eliminated, 1)
	require.Len(t, restSub.Nodes, 3)
}

func TestConnectedComponentsSplitsDisjointPaths(t *testing.T) {
	// two independent 3-node paths in one 6-node graph with no arcs between them
	g, err := graphcsr.Build(6,
		[]int32{0, 1, 1, 2, 3, 4, 4, 5},
		[]int32{1, 0, 2, 1, 4, 3, 5, 4},
		nil)
	require.NoError(t, err)

	comps := connectedComponents(g)
	require.Len(t, comps, 2)
	require.ElementsMatch(t, []int32{0, 1, 2}, comps[0])
	require.ElementsMatch(t, []int32{3, 4, 5}, comps[1])
}

func TestInduceBuildsReindexedSubgraph(t *testing.T) {
	g := buildTestPath(t, 5)
	sub := induce(g, []int32{1, 3, 4})

	require.Equal(t, 3, sub.Graph.NodeCount())
	// node 1 (local 0) has no induced neighbor in {1,3,4}; only 3-4 (local 1-2) survive
	require.Equal(t, 0, sub.Graph.Degree(0))
	require.Equal(t, 1, sub.Graph.Degree(1))
	require.Equal(t, []int32{1, 3, 4}, sub.toParent([]int32{0, 1, 2}))
}

func TestContractDegree2ChainsRemovesInteriorNodes(t *testing.T) {
	g := buildTestPath(t, 6) // 0-1-2-3-4-5, every interior node has degree 2
	reducedSub, contractions := contractDegree2Chains(g)

	require.Equal(t, 2, reducedSub.Graph.NodeCount()) // only the two endpoints survive
	require.ElementsMatch(t, []int32{0, 5}, reducedSub.Nodes)
	require.Len(t, contractions, 4)
}

func TestReinsertContractionsYieldsPermutation(t *testing.T) {
	g := buildTestPath(t, 6)
	reducedSub, contractions := contractDegree2Chains(g)
	require.Len(t, reducedSub.Nodes, 2)

	// the reduced order trivially places the two surviving endpoints
	reducedOrder := []int32{reducedSub.Nodes[0], reducedSub.Nodes[1]}
	full := reinsertContractions(reducedOrder, contractions)

	assertIsPermutationLocal(t, full, 6)
}

func assertIsPermutationLocal(t *testing.T, order []int32, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, v := range order {
		require.False(t, seen[v])
		seen[v] = true
	}
	for _, ok := range seen {
		require.True(t, ok)
	}
}
