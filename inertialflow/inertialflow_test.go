package inertialflow_test

import (
	"testing"

	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/arborist-go/fcutter/inertialflow"
	"github.com/stretchr/testify/require"
)

func TestRunSplitsAPathGraph(t *testing.T) {
	var tail, head []int32
	for v := 0; v < 9; v++ {
		tail = append(tail, int32(v), int32(v+1))
		head = append(head, int32(v+1), int32(v))
	}
	g, err := graphcsr.Build(10, tail, head, nil)
	require.NoError(t, err)
	require.NoError(t, g.ComputeBackArc())

	positions := make([]geopos.Pos, 10)
	for v := range positions {
		positions[v] = geopos.Pos{Lon: float64(v)}
	}

	cfg, err := fcconfig.New(fcconfig.WithMinBalance(0.2))
	require.NoError(t, err)

	res, err := inertialflow.Run(g, positions, geopos.Longitude, cfg)
	require.NoError(t, err)
	require.Equal(t, 10, len(res.Side[0])+len(res.Side[1]))
	require.NotEmpty(t, res.SourceNodes)
	require.NotEmpty(t, res.SinkNodes)
	require.Len(t, res.SourceNodes, 2) // ceil(0.2*10) = 2
	require.Len(t, res.SinkNodes, 2)
}

func TestRunUsesMinBalanceNotBulkDistanceFactor(t *testing.T) {
	var tail, head []int32
	for v := 0; v < 19; v++ {
		tail = append(tail, int32(v), int32(v+1))
		head = append(head, int32(v+1), int32(v))
	}
	g, err := graphcsr.Build(20, tail, head, nil)
	require.NoError(t, err)
	require.NoError(t, g.ComputeBackArc())

	positions := make([]geopos.Pos, 20)
	for v := range positions {
		positions[v] = geopos.Pos{Lon: float64(v)}
	}

	// BulkDistanceFactor left at its own default (0.05); MinBalance set
	// to a distinct, easily-checked value the extreme-set sizing must
	// follow instead.
	cfg, err := fcconfig.New(fcconfig.WithMinBalance(0.25))
	require.NoError(t, err)

	res, err := inertialflow.Run(g, positions, geopos.Longitude, cfg)
	require.NoError(t, err)
	require.Len(t, res.SourceNodes, 5) // ceil(0.25*20) = 5, not ceil(0.05*20) = 1
	require.Len(t, res.SinkNodes, 5)
}
