package inertialflow

import (
	"errors"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/geopos"
	"github.com/arborist-go/fcutter/graphcsr"
)

// ErrNoEndpoints indicates a projection's extreme sets were empty
// (a graph too small to split, n < 2).
var ErrNoEndpoints = errors.New("inertialflow: projection produced no source or sink nodes")

// Result is the vertex bipartition computed for one projection axis.
type Result struct {
	Axis        geopos.Axis
	Side        [2][]int32 // Side[0], Side[1]: the two partition halves, virtual terminals excluded
	CutSize     int
	SourceNodes []int32
	SinkNodes   []int32
}

// Run computes the inertial-flow bipartition along axis: it splits
// positions into the fraction-n smallest/largest projected nodes, wires
// each set to its own virtual terminal, and drains a cutter.Cutter over
// the augmented graph to its first exposed cut.
//
// Complexity: dominated by the underlying cutter's Advance loop, which
// runs in time proportional to the total augmenting-path work plus the
// final cut-front size; see cutter.Cutter.
func Run(g *graphcsr.Graph, positions []geopos.Pos, axis geopos.Axis, cfg *fcconfig.Config) (Result, error) {
	order := geopos.OrderedNodes(positions, axis)
	sourceNodes, sinkNodes := geopos.Extremes(order, cfg.MinBalance)
	if len(sourceNodes) == 0 || len(sinkNodes) == 0 {
		return Result{}, ErrNoEndpoints
	}

	withSource, virtualSource := g.WithVirtualTerminal(sourceNodes)
	withBoth, virtualSink := withSource.WithVirtualTerminal(sinkNodes)
	if err := withBoth.ComputeBackArc(); err != nil {
		return Result{}, err
	}

	c, err := cutter.New(withBoth, cfg, cutter.Terminal{Source: virtualSource, Target: virtualSink})
	if err != nil {
		return Result{}, err
	}

	var last cutter.Cut
	for c.Advance() {
		if cut, ok := c.CurrentCut(); ok {
			last = cut

			break
		}
	}

	side0 := make([]int32, 0, g.NodeCount()/2)
	side1 := make([]int32, 0, g.NodeCount()/2)
	for v := int32(0); v < int32(g.NodeCount()); v++ {
		if c.AssimilatedContains(cutter.Source, v) {
			side0 = append(side0, v)
		} else {
			side1 = append(side1, v)
		}
	}

	return Result{
		Axis:        axis,
		Side:        [2][]int32{side0, side1},
		CutSize:     last.CutSize,
		SourceNodes: sourceNodes,
		SinkNodes:   sinkNodes,
	}, nil
}
