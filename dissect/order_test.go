package dissect_test

import (
	"context"
	"testing"

	"github.com/arborist-go/fcutter/dissect"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/stretchr/testify/require"
)

func pathGraph(t *testing.T, n int) *graphcsr.Graph {
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

func gridGraph(t *testing.T, rows, cols int) *graphcsr.Graph {
	t.Helper()
	id := func(r, c int) int32 { return int32(r*cols + c) }
	var tail, head []int32
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				tail = append(tail, id(r, c), id(r, c+1))
				head = append(head, id(r, c+1), id(r, c))
			}
			if r+1 < rows {
				tail = append(tail, id(r, c), id(r+1, c))
				head = append(head, id(r+1, c), id(r, c))
			}
		}
	}
	g, err := graphcsr.Build(rows*cols, tail, head, nil)
	require.NoError(t, err)

	return g
}

func disjointPaths(t *testing.T, segments, segLen int) *graphcsr.Graph {
	t.Helper()
	var tail, head []int32
	for s := 0; s < segments; s++ {
		base := int32(s * segLen)
		for v := 0; v < segLen-1; v++ {
			tail = append(tail, base+int32(v), base+int32(v+1))
			head = append(head, base+int32(v+1), base+int32(v))
		}
	}
	g, err := graphcsr.Build(segments*segLen, tail, head, nil)
	require.NoError(t, err)

	return g
}

func assertIsPermutation(t *testing.T, order []int32, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, v := range order {
		require.False(t, seen[v], "node %d appears more than once", v)
		seen[v] = true
	}
	for v, ok := range seen {
		require.True(t, ok, "node %d missing from order", v)
	}
}

func TestOrderPathGraphReturnsPermutation(t *testing.T) {
	g := pathGraph(t, 9)
	cfg, err := fcconfig.New(fcconfig.WithCutterCount(2), fcconfig.WithDistanceOrderingCutterCount(2), fcconfig.WithGeoPosOrderingCutterCount(0))
	require.NoError(t, err)

	order, err := dissect.Order(context.Background(), g, nil, cfg)
	require.NoError(t, err)
	assertIsPermutation(t, order, 9)
}

func TestOrderGridGraphReturnsPermutation(t *testing.T) {
	g := gridGraph(t, 5, 5)
	cfg, err := fcconfig.New(fcconfig.WithCutterCount(2), fcconfig.WithDistanceOrderingCutterCount(2), fcconfig.WithGeoPosOrderingCutterCount(0))
	require.NoError(t, err)

	order, err := dissect.Order(context.Background(), g, nil, cfg)
	require.NoError(t, err)
	assertIsPermutation(t, order, 25)
}

func TestOrderDisconnectedGraphOrdersEachComponent(t *testing.T) {
	g := disjointPaths(t, 3, 6)
	cfg, err := fcconfig.New(fcconfig.WithCutterCount(2), fcconfig.WithDistanceOrderingCutterCount(2), fcconfig.WithGeoPosOrderingCutterCount(0))
	require.NoError(t, err)

	order, err := dissect.Order(context.Background(), g, nil, cfg)
	require.NoError(t, err)
	assertIsPermutation(t, order, 18)
}

func TestOrderSingleNodeGraph(t *testing.T) {
	g, err := graphcsr.Build(1, nil, nil, nil)
	require.NoError(t, err)
	cfg, err := fcconfig.New()
	require.NoError(t, err)

	order, err := dissect.Order(context.Background(), g, nil, cfg)
	require.NoError(t, err)
	assertIsPermutation(t, order, 1)
}

func TestOrderRespectsCanceledContext(t *testing.T) {
	g := gridGraph(t, 4, 4)
	cfg, err := fcconfig.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dissect.Order(ctx, g, nil, cfg)
	require.Error(t, err)
}
