package distcutter

import (
	"math"
	"sort"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
)

// Cutter wraps a cutter.Cutter, installing node-distance labels from
// both terminals before the first Advance and, when cfg.BulkDistance is
// enabled, rebuilding the node order used for forced and bulk piercing
// from target_dist - source_dist.
type Cutter struct {
	*cutter.Cutter
}

// New builds distance labels for term's source and target over g, then
// optionally rebuilds term.NodeOrder from target_dist-source_dist when
// cfg.BulkDistance is set, and constructs the underlying cutter.Cutter.
//
// The labeling mode follows cfg.PierceRatingChoice, not the graph's raw
// arc weights: a Hop-named rating always gets hop distances and a
// Weight-named rating always gets Dijkstra distances, even on a weighted
// graph requesting hop distances or an unweighted graph requesting
// weighted ones. When cfg.BulkDistance is set and term already carries a
// non-empty node order (the geo-projection ensemble slots do; the
// random-pair slots don't), labels are instead seeded from a
// terminal-set BFS over the first/last ⌈BulkDistanceFactor·|NodeOrder|⌉
// nodes of that order simultaneously — cheaper than a full point-source
// BFS/Dijkstra and the labeling mode the node order was already tuned
// for.
//
// Complexity: O(n+m) for BFS/terminal-set labeling, O((n+m) log n) for
// Dijkstra labeling.
func New(g *graphcsr.Graph, cfg *fcconfig.Config, term cutter.Terminal) (*Cutter, error) {
	sourceDist, targetDist := labelDistances(g, cfg, term)

	if cfg.BulkDistance {
		term.NodeOrder = orderByDistanceGap(sourceDist, targetDist, term.NodeOrder)
	}

	base, err := cutter.New(g, cfg, term)
	if err != nil {
		return nil, err
	}
	base.SetDistanceLabels(sourceDist, targetDist)

	return &Cutter{Cutter: base}, nil
}

func labelDistances(g *graphcsr.Graph, cfg *fcconfig.Config, term cutter.Terminal) ([]int32, []int32) {
	if cfg.BulkDistance && len(term.NodeOrder) > 0 {
		if size := terminalSetSize(len(term.NodeOrder), cfg.BulkDistanceFactor); 2*size <= len(term.NodeOrder) {
			sourceDist := terminalSetDistances(g, term.NodeOrder[:size])
			targetDist := terminalSetDistances(g, term.NodeOrder[len(term.NodeOrder)-size:])

			return sourceDist, targetDist
		}
	}

	if pierceRatingWantsWeighted(cfg.PierceRatingChoice) {
		return weightDistances(g, term.Source), weightDistances(g, term.Target)
	}

	return hopDistances(g, term.Source), hopDistances(g, term.Target)
}

// pierceRatingWantsWeighted reports whether r is one of the
// weighted-distance pierce-rating variants; every other variant (the
// Hop variants, and the distance-agnostic Oldest/Random/MaxArcWeight/
// MinArcWeight choices, which never read sd/td) gets hop distances,
// the cheaper of the two to compute.
func pierceRatingWantsWeighted(r fcconfig.PierceRating) bool {
	switch r {
	case fcconfig.MaxTargetMinusSourceWeightDist, fcconfig.MaxTargetWeightDist,
		fcconfig.MinSourceWeightDist, fcconfig.CircularWeight:
		return true
	default:
		return false
	}
}

// terminalSetSize is ⌈factor·n⌉, clamped to at least 1.
func terminalSetSize(n int, factor float64) int {
	size := int(math.Ceil(factor * float64(n)))
	if size < 1 {
		size = 1
	}

	return size
}

// orderByDistanceGap rebuilds (or, if base is non-empty, reorders) a
// node order sorted by ascending target_dist - source_dist, the
// direction forced and bulk piercing should consume nodes in: nodes
// closer to the target (relative to the source) are pierced from the
// Source-side cursor's end of the order first. Unreached nodes (distance
// -1 on either side) sort last and in arbitrary order, since they cannot
// meaningfully participate in either terminal's labeling.
func orderByDistanceGap(sourceDist, targetDist []int32, base []int32) []int32 {
	order := base
	if len(order) == 0 {
		order = make([]int32, len(sourceDist))
		for v := range order {
			order[v] = int32(v)
		}
	}

	gap := func(v int32) int64 {
		sd, td := sourceDist[v], targetDist[v]
		if sd < 0 || td < 0 {
			return int64(1) << 62
		}

		return int64(td) - int64(sd)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return gap(order[i]) < gap(order[j])
	})

	return order
}
