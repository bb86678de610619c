package expandedgraph_test

import (
	"testing"

	"github.com/arborist-go/fcutter/expandedgraph"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func TestBuildDoublesNodesAndAddsInternalArcs(t *testing.T) {
	tail := []int32{0, 1}
	head := []int32{1, 0}
	g, err := graphcsr.Build(2, tail, head, nil)
	require.NoError(t, err)

	exp := expandedgraph.Build(g)
	require.Equal(t, 4, exp.Graph.NodeCount())
	require.Len(t, exp.InternalArc, 2)
	require.NoError(t, exp.Graph.ComputeBackArc())

	for v := int32(0); v < 2; v++ {
		a := exp.InternalArc[v]
		require.Equal(t, expandedgraph.In(v), exp.Graph.Tail(a))
		require.Equal(t, expandedgraph.Out(v), exp.Graph.Head(a))
	}
}

func TestSeparatorFromCutArcsMapsBackToOriginalNodes(t *testing.T) {
	tail := []int32{0, 1}
	head := []int32{1, 0}
	g, err := graphcsr.Build(2, tail, head, nil)
	require.NoError(t, err)

	exp := expandedgraph.Build(g)
	sep := exp.SeparatorFromCutArcs([]int32{exp.InternalArc[1]})
	require.Equal(t, []int32{1}, sep)
}
