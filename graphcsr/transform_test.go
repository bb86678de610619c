package graphcsr_test

import (
	"testing"

	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func TestWithVirtualTerminalConnectsMembers(t *testing.T) {
	g, err := graphcsr.Build(3, []int32{0, 1, 1, 2}, []int32{1, 0, 2, 1}, nil)
	require.NoError(t, err)

	aug, terminal := g.WithVirtualTerminal([]int32{0, 2})
	require.Equal(t, int32(3), terminal)
	require.Equal(t, 4, aug.NodeCount())
	require.Len(t, aug.OutArcs(terminal), 2)
	require.NoError(t, aug.ComputeBackArc())
}
