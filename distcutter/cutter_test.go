package distcutter_test

import (
	"testing"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/distcutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func TestDistanceAwareCutterProducesCuts(t *testing.T) {
	tail := []int32{0, 1, 1, 2, 2, 3}
	head := []int32{1, 0, 2, 1, 3, 2}
	g, err := graphcsr.Build(4, tail, head, nil)
	require.NoError(t, err)
	require.NoError(t, g.ComputeBackArc())

	cfg, err := fcconfig.New(fcconfig.WithGraphSearchAlgorithm(fcconfig.BreadthFirstSearch))
	require.NoError(t, err)

	c, err := distcutter.New(g, cfg, cutter.Terminal{Source: 0, Target: 3})
	require.NoError(t, err)

	var sawCut bool
	for i := 0; i < 10 && c.Advance(); i++ {
		if _, ok := c.CurrentCut(); ok {
			sawCut = true
		}
	}
	require.True(t, sawCut)
	require.True(t, c.Finished())
}

func TestBulkDistanceRebuildsNodeOrder(t *testing.T) {
	tail := []int32{0, 1, 1, 2}
	head := []int32{1, 0, 2, 1}
	g, err := graphcsr.Build(3, tail, head, nil)
	require.NoError(t, err)
	require.NoError(t, g.ComputeBackArc())

	cfg, err := fcconfig.New(fcconfig.WithBulkDistance(true))
	require.NoError(t, err)

	c, err := distcutter.New(g, cfg, cutter.Terminal{Source: 0, Target: 2})
	require.NoError(t, err)
	require.NotNil(t, c)
}
