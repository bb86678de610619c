package distcutter

import (
	"testing"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func buildWeightedPath(t *testing.T, n int) *graphcsr.Graph {
	t.Helper()
	var tail, head, weight []int32
	for v := 0; v < n-1; v++ {
		tail = append(tail, int32(v), int32(v+1))
		head = append(head, int32(v+1), int32(v))
		weight = append(weight, 5, 5)
	}
	g, err := graphcsr.Build(n, tail, head, weight)
	require.NoError(t, err)

	return g
}

func TestPierceRatingWantsWeightedMatchesVariantName(t *testing.T) {
	require.True(t, pierceRatingWantsWeighted(fcconfig.MaxTargetMinusSourceWeightDist))
	require.True(t, pierceRatingWantsWeighted(fcconfig.MaxTargetWeightDist))
	require.True(t, pierceRatingWantsWeighted(fcconfig.MinSourceWeightDist))
	require.True(t, pierceRatingWantsWeighted(fcconfig.CircularWeight))

	require.False(t, pierceRatingWantsWeighted(fcconfig.MaxTargetMinusSourceHopDist))
	require.False(t, pierceRatingWantsWeighted(fcconfig.MaxTargetHopDist))
	require.False(t, pierceRatingWantsWeighted(fcconfig.Oldest))
	require.False(t, pierceRatingWantsWeighted(fcconfig.Random))
}

func TestLabelDistancesFollowsPierceRatingNotGraphWeights(t *testing.T) {
	g := buildWeightedPath(t, 4) // every arc weight 5, hop dist 0..3 vs weighted dist 0,5,10,15

	cfg, err := fcconfig.New(fcconfig.WithPierceRating(fcconfig.MaxTargetMinusSourceHopDist))
	require.NoError(t, err)
	sourceDist, _ := labelDistances(g, cfg, cutter.Terminal{Source: 0, Target: 3})
	require.Equal(t, int32(1), sourceDist[1], "hop-named rating must ignore the graph's real weights")

	cfg, err = fcconfig.New(fcconfig.WithPierceRating(fcconfig.MaxTargetWeightDist))
	require.NoError(t, err)
	sourceDist, _ = labelDistances(g, cfg, cutter.Terminal{Source: 0, Target: 3})
	require.Equal(t, int32(5), sourceDist[1], "weight-named rating must use Dijkstra distances")
}

func TestLabelDistancesUsesTerminalSetBFSWhenNodeOrderPresent(t *testing.T) {
	g := buildTestPath(t, 10)
	cfg, err := fcconfig.New(fcconfig.WithBulkDistance(true), fcconfig.WithBulkDistanceFactor(0.2))
	require.NoError(t, err)

	order := make([]int32, 10)
	for i := range order {
		order[i] = int32(i)
	}
	term := cutter.Terminal{Source: 0, Target: 9, NodeOrder: order}

	sourceDist, targetDist := labelDistances(g, cfg, term)
	// terminal set size = ceil(0.2*10) = 2, seeded from {0,1} and {8,9};
	// node 0 and node 1 are both roots, so both carry distance 0.
	require.Equal(t, int32(0), sourceDist[0])
	require.Equal(t, int32(0), sourceDist[1])
	require.Equal(t, int32(0), targetDist[9])
	require.Equal(t, int32(0), targetDist[8])
}

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
