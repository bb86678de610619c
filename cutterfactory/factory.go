package cutterfactory

import (
	"math/rand"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
)

// Build returns one cutter.Terminal per ensemble slot: the first
// cfg.GeoPosOrderingCutterCount terminals pick their source/target from
// opposite extremes of an inertial-flow axis (cycling through
// geopos.Axes when more geo slots are requested than axes exist); the
// remaining cfg.DistanceOrderingCutterCount terminals pick a uniformly
// random, distinct source/target pair. positions may be nil, in which
// case every slot falls back to a random pair (no geographic data to
// project).
//
// Complexity: O(n log n) per geo slot (geopos.OrderedNodes sorts once
// per distinct axis used, cached across slots sharing an axis) plus
// O(1) per random slot.
func Build(g *graphcsr.Graph, positions []geopos.Pos, cfg *fcconfig.Config) []cutter.Terminal {
	n := g.NodeCount()
	rng := rand.New(rand.NewSource(int64(cfg.RandomSeed) + 1))

	terminals := make([]cutter.Terminal, 0, cfg.GeoPosOrderingCutterCount+cfg.DistanceOrderingCutterCount)

	axisOrders := make(map[geopos.Axis][]int32)
	id := 0
	for i := 0; i < cfg.GeoPosOrderingCutterCount && len(positions) == n && n > 1; i++ {
		axis := geopos.Axes[i%len(geopos.Axes)]
		order, ok := axisOrders[axis]
		if !ok {
			order = geopos.OrderedNodes(positions, axis)
			axisOrders[axis] = order
		}
		terminals = append(terminals, cutter.Terminal{
			Source:    order[0],
			Target:    order[len(order)-1],
			NodeOrder: append([]int32(nil), order...),
			CutterID:  id,
		})
		id++
	}

	for len(terminals) < cfg.GeoPosOrderingCutterCount+cfg.DistanceOrderingCutterCount && n > 1 {
		s, t := randomDistinctPair(rng, n)
		terminals = append(terminals, cutter.Terminal{
			Source:   s,
			Target:   t,
			CutterID: id,
		})
		id++
	}

	return terminals
}

func randomDistinctPair(rng *rand.Rand, n int) (int32, int32) {
	s := int32(rng.Intn(n))
	t := int32(rng.Intn(n))
	for t == s {
		t = int32(rng.Intn(n))
	}

	return s, t
}
