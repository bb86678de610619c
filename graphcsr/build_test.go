package graphcsr_test

import (
	"testing"

	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func TestBuildCSROffsets(t *testing.T) {
	// Path 0-1-2 directed both ways.
	tail := []int32{0, 1, 1, 2}
	head := []int32{1, 0, 2, 1}
	g, err := graphcsr.Build(3, tail, head, nil)
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 4, g.ArcCount())
	require.Len(t, g.OutArcs(0), 1)
	require.Len(t, g.OutArcs(1), 2)
	require.Len(t, g.OutArcs(2), 1)
	require.True(t, g.HasBackArc())
}

func TestComputeBackArcRejectsAsymmetric(t *testing.T) {
	g, err := graphcsr.Build(2, []int32{0}, []int32{1}, nil)
	require.NoError(t, err)
	require.False(t, g.HasBackArc())
	require.ErrorIs(t, g.ComputeBackArc(), graphcsr.ErrAsymmetric)
}

func TestComputeBackArcRejectsLoop(t *testing.T) {
	g, err := graphcsr.Build(1, []int32{0}, []int32{0}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, g.ComputeBackArc(), graphcsr.ErrLoop)
}

func TestSymmetrizeAddsMissingReverse(t *testing.T) {
	g, err := graphcsr.Build(2, []int32{0}, []int32{1}, nil)
	require.NoError(t, err)
	sym := g.Symmetrize()
	require.Equal(t, 2, sym.ArcCount())
	require.NoError(t, sym.ComputeBackArc())
}

func TestDeduplicateDropsLoopsAndKeepsMinWeight(t *testing.T) {
	tail := []int32{0, 0, 0, 1}
	head := []int32{1, 1, 0, 0}
	weight := []int32{5, 2, 9, 5}
	g, err := graphcsr.Build(2, tail, head, weight)
	require.NoError(t, err)

	dedup := g.Deduplicate()
	require.Equal(t, 2, dedup.ArcCount())
	for a := 0; a < dedup.ArcCount(); a++ {
		if dedup.Tail(int32(a)) == 0 {
			require.Equal(t, int32(2), dedup.Weight(int32(a)))
		}
	}
}

func TestSortArcsByTailThenHead(t *testing.T) {
	tail := []int32{1, 0, 1, 0}
	head := []int32{2, 2, 0, 1}
	g, err := graphcsr.Build(3, tail, head, nil)
	require.NoError(t, err)
	sorted := g.SortArcsByTailThenHead()
	var prevTail, prevHead int32 = -1, -1
	for a := 0; a < sorted.ArcCount(); a++ {
		tv, hv := sorted.Tail(int32(a)), sorted.Head(int32(a))
		if tv == prevTail {
			require.GreaterOrEqual(t, hv, prevHead)
		} else {
			require.Greater(t, tv, prevTail)
		}
		prevTail, prevHead = tv, hv
	}
}

func TestValidateAcceptsEmptyGraph(t *testing.T) {
	g, err := graphcsr.Build(1, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}
