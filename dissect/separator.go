package dissect

import (
	"context"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/cutterfactory"
	"github.com/arborist-go/fcutter/expandedgraph"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/arborist-go/fcutter/multicutter"
)

// separation is a graph split: the separator (nodes for a vertex split,
// or absent for an arc split) and the two resulting vertex sets.
type separation struct {
	separator []int32 // vertex separator; empty for an arc split
	cutArcs   []int32 // arc cut; empty for a vertex split
	left      []int32
	right     []int32
}

// findSeparator runs a MultiCutter ensemble over g (directly, for the
// Edge* selections, or over its node-split expansion for the Node*
// selections) and reports the winning cut as a separation of g's nodes.
//
// Complexity: dominated by the ensemble search, one cutter per terminal
// (cfg.GeoPosOrderingCutterCount + cfg.DistanceOrderingCutterCount), each
// bounded by the usual FlowCutter per-cutter cost.
func findSeparator(ctx context.Context, g *graphcsr.Graph, positions []geopos.Pos, cfg *fcconfig.Config) (separation, error) {
	switch cfg.SeparatorChoice {
	case fcconfig.EdgeMinExpansion, fcconfig.EdgeFirst:
		return findArcSeparator(ctx, g, positions, cfg)
	default:
		return findVertexSeparator(ctx, g, positions, cfg)
	}
}

func findArcSeparator(ctx context.Context, g *graphcsr.Graph, positions []geopos.Pos, cfg *fcconfig.Config) (separation, error) {
	if !g.HasBackArc() {
		if err := g.ComputeBackArc(); err != nil {
			return separation{}, err
		}
	}

	terminals := cutterfactory.Build(g, positions, cfg)
	mode := multicutter.Unordered
	pool, err := multicutter.New(g, cfg, terminals, mode)
	if err != nil {
		return separation{}, err
	}
	if cfg.SeparatorChoice == fcconfig.EdgeMinExpansion {
		pool.WithScoreFunc(func(cut cutter.Cut) float64 { return bestCutScore(cut, cfg) })
	}

	cut, ok, err := pool.BestCut(ctx)
	if err != nil {
		return separation{}, err
	}
	if !ok {
		return separation{}, ErrNoSeparatorFound
	}
	winner, ok := pool.CutterByID(cut.CutterID)
	if !ok {
		return separation{}, ErrNoSeparatorFound
	}

	var left, right []int32
	for v := int32(0); v < int32(g.NodeCount()); v++ {
		if winner.AssimilatedContains(cutter.Source, v) {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	orientedArcs := orderCutArcs(g, cut.CutArcs, func(v int32) bool {
		return winner.AssimilatedContains(cut.SmallerSide, v)
	})

	return separation{cutArcs: orientedArcs, left: left, right: right}, nil
}

func findVertexSeparator(ctx context.Context, g *graphcsr.Graph, positions []geopos.Pos, cfg *fcconfig.Config) (separation, error) {
	expanded := expandedgraph.Build(g)
	if err := expanded.Graph.ComputeBackArc(); err != nil {
		return separation{}, err
	}

	terminals := cutterfactory.Build(expanded.Graph, expandedgraph.ExpandPositions(positions), cfg)
	pool, err := multicutter.New(expanded.Graph, cfg, terminals, multicutter.Unordered)
	if err != nil {
		return separation{}, err
	}
	if cfg.SeparatorChoice == fcconfig.NodeMinExpansion {
		pool.WithScoreFunc(func(cut cutter.Cut) float64 { return bestCutScore(cut, cfg) })
	}

	cut, ok, err := pool.BestCut(ctx)
	if err != nil {
		return separation{}, err
	}
	if !ok {
		return separation{}, ErrNoSeparatorFound
	}
	winner, ok := pool.CutterByID(cut.CutterID)
	if !ok {
		return separation{}, ErrNoSeparatorFound
	}

	sep := expanded.SeparatorFromCutArcs(cut.CutArcs)
	inSeparator := make(map[int32]bool, len(sep))
	for _, v := range sep {
		inSeparator[v] = true
	}

	var left, right []int32
	for v := int32(0); v < int32(g.NodeCount()); v++ {
		if inSeparator[v] {
			continue
		}
		if winner.AssimilatedContains(cutter.Source, expandedgraph.In(v)) {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	return separation{separator: sep, left: left, right: right}, nil
}
