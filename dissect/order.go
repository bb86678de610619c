package dissect

import (
	"context"

	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
	"golang.org/x/sync/errgroup"
)

// TaskSpawnCutoff is the node count above which Order spawns its two
// recursive halves on separate goroutines rather than recursing
// in-line: below this size fork/join overhead would dominate the
// recursive work itself.
const TaskSpawnCutoff = 800

// Order computes a nested-dissection elimination order for g, suitable
// as the node order a CCH contraction pass consumes: every node appears
// exactly once, and for any two nodes u, v with u eliminated before v,
// either they never shared a separator or u's subtree was split from
// v's by some ancestor separator. positions is optional per-node
// geographic data feeding cutterfactory's geo-ordered ensemble slots;
// nil disables that half of the ensemble, falling back entirely to
// random-pair distance-ordered cutters.
//
// Complexity: O((n + m) log n) expected, assuming separator sizes shrink
// geometrically with recursion depth (true for road-network-scale planar
// or near-planar graphs).
func Order(ctx context.Context, g *graphcsr.Graph, positions []geopos.Pos, cfg *fcconfig.Config) ([]int32, error) {
	nodes := make([]int32, g.NodeCount())
	for i := range nodes {
		nodes[i] = int32(i)
	}

	return orderSubgraph(ctx, induce(g, nodes), positions, cfg)
}

func orderSubgraph(ctx context.Context, sub subgraph, positions []geopos.Pos, cfg *fcconfig.Config) ([]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if comps := connectedComponents(sub.Graph); len(comps) > 1 {
		return orderComponents(ctx, sub, comps, positions, cfg)
	}

	if isTree(sub.Graph) {
		return sub.toParent(treeNodeRanking(sub.Graph)), nil
	}

	if isTrivial(sub.Graph) {
		return sub.toParent(identityOrder(sub.Graph.NodeCount())), nil
	}

	reducedSub, contractions := contractDegree2Chains(sub.Graph)
	if len(contractions) > 0 {
		if err := reducedSub.Graph.ComputeBackArc(); err != nil {
			return nil, err
		}
		reducedSub.Nodes = sub.toParent(reducedSub.Nodes) // compose through sub's own mapping to the top-level ids
		reducedOrder, err := orderSubgraph(ctx, reducedSub, positions, cfg)
		if err != nil {
			return nil, err
		}

		return reinsertParentContractions(reducedOrder, sub, contractions), nil
	}

	reducedSub3, eliminated3 := reduceDegree3IndependentSet(sub.Graph)
	if len(eliminated3) > 0 {
		if err := reducedSub3.Graph.ComputeBackArc(); err != nil {
			return nil, err
		}
		reducedSub3.Nodes = sub.toParent(reducedSub3.Nodes) // compose through sub's own mapping to the top-level ids
		reducedOrder, err := orderSubgraph(ctx, reducedSub3, positions, cfg)
		if err != nil {
			return nil, err
		}

		tail := make([]int32, len(eliminated3))
		for i, v := range eliminated3 {
			tail[i] = sub.Nodes[v]
		}

		return append(reducedOrder, tail...), nil
	}

	reducedSubBC, eliminatedBC := reduceLargestBiconnectedComponent(sub.Graph)
	if len(eliminatedBC) > 0 {
		if err := reducedSubBC.Graph.ComputeBackArc(); err != nil {
			return nil, err
		}
		reducedSubBC.Nodes = sub.toParent(reducedSubBC.Nodes) // compose through sub's own mapping to the top-level ids
		reducedOrder, err := orderSubgraph(ctx, reducedSubBC, positions, cfg)
		if err != nil {
			return nil, err
		}

		tail := make([]int32, len(eliminatedBC))
		for i, v := range eliminatedBC {
			tail[i] = sub.Nodes[v]
		}

		return append(reducedOrder, tail...), nil
	}

	if !sub.Graph.HasBackArc() {
		if err := sub.Graph.ComputeBackArc(); err != nil {
			return nil, err
		}
	}

	subPos := subPositions(positions, sub.Nodes)
	sep, err := findSeparator(ctx, sub.Graph, subPos, cfg)
	if err != nil {
		return nil, err
	}
	if len(sep.left) == 0 || len(sep.right) == 0 {
		// degenerate split (the winning cut left one side empty);
		// fall back to a plain identity order rather than recursing forever.
		return sub.toParent(identityOrder(sub.Graph.NodeCount())), nil
	}

	leftSub := induce(sub.Graph, sep.left)
	leftSub.Nodes = sub.toParent(sep.left) // compose through sub's own mapping to the top-level ids
	rightSub := induce(sub.Graph, sep.right)
	rightSub.Nodes = sub.toParent(sep.right)
	leftPos, rightPos := positions, positions // indexed by top-level ids at every level

	var leftOrder, rightOrder []int32
	if sub.Graph.NodeCount() > TaskSpawnCutoff {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			order, err := orderSubgraph(gctx, leftSub, leftPos, cfg)
			leftOrder = order

			return err
		})
		g.Go(func() error {
			order, err := orderSubgraph(gctx, rightSub, rightPos, cfg)
			rightOrder = order

			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		leftOrder, err = orderSubgraph(ctx, leftSub, leftPos, cfg)
		if err != nil {
			return nil, err
		}
		rightOrder, err = orderSubgraph(ctx, rightSub, rightPos, cfg)
		if err != nil {
			return nil, err
		}
	}

	// an arc-cut separation (sep.cutArcs set) carries no vertex separator;
	// left/right already partition every node and nothing more is appended.
	separatorParent := sub.toParent(sep.separator)

	order := make([]int32, 0, len(leftOrder)+len(rightOrder)+len(separatorParent))
	order = append(order, leftOrder...)
	order = append(order, rightOrder...)
	order = append(order, separatorParent...)

	return order, nil
}

// orderComponents orders each connected component of sub independently
// (they share no separator) and concatenates the results. Components
// above TaskSpawnCutoff nodes are dispatched concurrently.
func orderComponents(ctx context.Context, sub subgraph, comps [][]int32, positions []geopos.Pos, cfg *fcconfig.Config) ([]int32, error) {
	orders := make([][]int32, len(comps))
	g, gctx := errgroup.WithContext(ctx)

	for i, comp := range comps {
		i, comp := i, comp
		compSub := induce(sub.Graph, comp)
		compSub.Nodes = sub.toParent(comp) // compose through sub's own mapping to the top-level ids
		// positions stays indexed by top-level ids at every level
		compPos := positions
		if compSub.Graph.NodeCount() > TaskSpawnCutoff {
			g.Go(func() error {
				order, err := orderSubgraph(gctx, compSub, compPos, cfg)
				orders[i] = order

				return err
			})
		} else {
			order, err := orderSubgraph(ctx, compSub, compPos, cfg)
			if err != nil {
				return nil, err
			}
			orders[i] = order
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []int32
	for _, o := range orders {
		out = append(out, o...)
	}

	return out, nil
}

func identityOrder(n int) []int32 {
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}

	return order
}

// subPositions restricts positions (indexed by parent-of-all-parents node
// id) to the subset named by nodes, in nodes' order. Returns nil if
// positions is nil.
func subPositions(positions []geopos.Pos, nodes []int32) []geopos.Pos {
	if positions == nil {
		return nil
	}
	out := make([]geopos.Pos, len(nodes))
	for i, v := range nodes {
		out[i] = positions[v]
	}

	return out
}

// reinsertParentContractions expands a reduced-graph order (already
// translated to parent ids by the recursive call) with contracted nodes
// reinserted, translating the reduction's local node/left/right ids
// (which are sub.Graph-local, not yet parent ids) through sub first.
func reinsertParentContractions(reducedOrderInParentIDs []int32, sub subgraph, contractions []contraction) []int32 {
	translated := make([]contraction, len(contractions))
	for i, c := range contractions {
		translated[i] = contraction{
			node:  sub.Nodes[c.node],
			left:  sub.Nodes[c.left],
			right: sub.Nodes[c.right],
		}
	}

	return reinsertContractions(reducedOrderInParentIDs, translated)
}
