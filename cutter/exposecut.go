package cutter

// exposeCut brings the opposite side's Assimilated/Reachable sets back
// into a quiescent, consistent state after growing side, and records the
// resulting cut. By max-flow/min-cut duality, if growing side actually
// augmented the flow, the opposite side cannot itself discover a new
// augmenting path when re-grown to quiescence here — if it could, the
// flow would not yet be maximum and side's own grow would not have
// stalled. So the regrow below never recurses into another augmentation.
func (c *Cutter) exposeCut(side Side) {
	opp := opposite(side)

	// side's own Reachable set just finished a grow pass that ran to
	// quiescence (growAndMaybeAugment only returns once a Grow call
	// completes without being interrupted by an augmenting path), so its
	// membership is now the mature Assimilated[side] for this step.
	c.assimilated[side].ResetTo(c.reachable[side], false)

	c.reachable[opp].ResetTo(c.assimilated[opp], true)
	c.reachable[opp].Grow(
		c.g,
		func(a int32) bool { return c.shouldFollowArc(opp, a) },
		nil,
		func(int32) bool { return true },
	)
	c.assimilated[opp].ResetTo(c.reachable[opp], false)

	c.recomputeCutFront()

	smaller, larger := side, opp
	if c.assimilated[opp].Size() < c.assimilated[side].Size() {
		smaller, larger = opp, side
	}

	cutArcs := c.cutFront[smaller]
	c.lastCut = Cut{
		CutterID:      c.cutterID,
		SmallSideSize: c.assimilated[smaller].Size(),
		LargeSideSize: c.assimilated[larger].Size(),
		CutSize:       len(cutArcs),
		CutArcs:       append([]int32(nil), cutArcs...), // cutFront is reused by the next recomputeCutFront
		SmallerSide:   smaller,
	}
	c.hasCut = true

	if c.lastCut.CutSize > c.cfg.MaxCutSize {
		c.finished = true
	}
}

// recomputeCutFront rebuilds both sides' cut-front arc lists: every arc
// whose tail is assimilated on one side and whose head is not assimilated
// on that same side (i.e. it leaves the assimilated region, carrying flow
// or not). Complexity: O(n + out-arcs of all assimilated nodes).
func (c *Cutter) recomputeCutFront() {
	for _, s := range [2]Side{Source, Target} {
		front := c.cutFront[s][:0]
		n := int32(c.g.NodeCount())
		for v := int32(0); v < n; v++ {
			if !c.assimilated[s].Contains(v) {
				continue
			}
			for _, a := range c.g.OutArcs(v) {
				if !c.assimilated[s].Contains(c.g.Head(a)) {
					front = append(front, a)
				}
			}
		}
		c.cutFront[s] = front
	}
}

// CurrentCut returns the cut exposed by the most recent Advance call, if
// any (Advance returns false once no more cuts are produced, but a single
// Advance call always exposes exactly one cut when it returns true).
func (c *Cutter) CurrentCut() (Cut, bool) {
	return c.lastCut, c.hasCut
}

// HasCut reports whether the most recent Advance exposed a cut.
func (c *Cutter) HasCut() bool { return c.hasCut }

// Finished reports whether the cutter has stopped enumerating cuts.
func (c *Cutter) Finished() bool { return c.finished }

// FlowIntensity returns the total number of augmentations performed so
// far, equal to the current maximum flow value between source and
// target (and, by duality, the size of the minimum cut found so far).
func (c *Cutter) FlowIntensity() int { return c.flowIntensity }

// AssimilatedContains reports whether v currently belongs to
// Assimilated[side], as of the most recent Advance call. Exposed for
// callers (inertialflow, the nested-dissection driver) that need full
// side membership rather than just the reported cut-front arcs.
func (c *Cutter) AssimilatedContains(side Side, v int32) bool {
	return c.assimilated[side].Contains(v)
}
