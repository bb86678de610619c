package cutter

import (
	"math/rand"

	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/flowstate"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/arborist-go/fcutter/nodeset"
)

// New constructs a Cutter over g with the given terminal configuration.
// g must already carry a valid back-arc permutation (graphcsr.Graph.HasBackArc).
// Complexity: O(n).
func New(g *graphcsr.Graph, cfg *fcconfig.Config, term Terminal) (*Cutter, error) {
	n := g.NodeCount()
	if term.Source < 0 || int(term.Source) >= n || term.Target < 0 || int(term.Target) >= n {
		return nil, ErrTerminalOutOfRange
	}
	if term.Source == term.Target {
		return nil, ErrSourceEqualsTarget
	}
	if !g.HasBackArc() {
		return nil, ErrGraphNotSymmetric
	}

	mode := nodeset.PseudoDFS
	if cfg.SearchAlgorithm == fcconfig.BreadthFirstSearch {
		mode = nodeset.BFS
	}

	c := &Cutter{
		g:   g,
		cfg: cfg,

		flow: flowstate.New(g.ArcCount()),

		parentArc: make([]int32, n),

		nodeOrder:  term.NodeOrder,
		cursorBack: len(term.NodeOrder),

		rng:      rand.New(rand.NewSource(int64(cfg.RandomSeed) + int64(term.CutterID)*0x9E3779B1)),
		cutterID: term.CutterID,
	}
	for v := range c.parentArc {
		c.parentArc[v] = -1
	}
	c.assimilated[Source] = nodeset.New(n, mode)
	c.assimilated[Target] = nodeset.New(n, mode)
	c.reachable[Source] = nodeset.New(n, mode)
	c.reachable[Target] = nodeset.New(n, mode)

	c.init(term)

	return c, nil
}

// SetDistanceLabels installs precomputed node_dist[source] and
// node_dist[target] arrays used by distance-based pierce ratings. Called by
// distcutter.Cutter before the first Advance. Complexity: O(1).
func (c *Cutter) SetDistanceLabels(sourceDist, targetDist []int32) {
	c.sourceDist = sourceDist
	c.targetDist = targetDist
}

// CutterID returns this cutter's ensemble identifier.
func (c *Cutter) CutterID() int { return c.cutterID }

// init seeds both sides from the terminal pair and performs equidistant
// bulk piercing up to InitialAssimilatedFraction — the one context the
// equidistant variant is considered correct in (see package-level Open
// Question notes in DESIGN.md).
func (c *Cutter) init(term Terminal) {
	c.absorb(Source, term.Source)
	c.absorb(Target, term.Target)

	if f := c.cfg.InitialAssimilatedFraction; f > 0 && len(c.nodeOrder) > 0 {
		c.bulkPierceEquidistant(Source, f)
		c.bulkPierceEquidistant(Target, f)
	}

	c.recomputeCutFront()
	c.side = c.chooseSide()
}

// absorb marks v a member of both Assimilated[side] and Reachable[side],
// and queues it as a traversal root. It does not decide whether v
// contributes new frontier (the "neighborhood entirely inside" elision
// only applies to bulk piercing, per spec §4.4.1).
func (c *Cutter) absorb(side Side, v int32) {
	c.assimilated[side].AddNode(v)
	c.assimilated[side].AddExtraNode(v)
	c.reachable[side].AddNode(v)
	c.reachable[side].AddExtraNode(v)
}
