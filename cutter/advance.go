package cutter

// Advance runs one pierce+grow(+augment|stall) step of the state machine.
// It returns false once the cutter has finished enumerating cuts (the
// opposite side has been exhausted or MaxCutSize/MaxImbalance forbids
// any further pierce). After a call that returns true, CurrentCut reports
// whether a new cut was exposed on this step.
// Complexity: amortized O(arcs touched by this step).
func (c *Cutter) Advance() bool {
	if c.finished {
		return false
	}
	c.hasCut = false

	side := c.side
	v, ok := c.pierce(side)
	if !ok {
		c.finished = true

		return false
	}

	if c.assimilated[side].AddNode(v) {
		c.assimilated[side].AddExtraNode(v)
		c.reachable[side].AddNode(v)
		c.reachable[side].AddExtraNode(v)
		c.parentArc[v] = -1
	}

	c.growAndMaybeAugment(side)
	c.exposeCut(side)

	c.side = c.chooseSide()

	return true
}

// growAndMaybeAugment grows Reachable[side] until either it stalls (no
// more residual arcs to follow: a new cut is exposed) or it walks into
// Assimilated[opposite(side)] (an augmenting path: flow is flipped along
// the discovered path). Set.expand marks the hit node a member of
// Reachable[side] before the onNewNode callback can refuse it, so after
// every augmentation Reachable[side] is discarded and regrown from
// Assimilated[side] (which the augmentation never invalidates) rather
// than resumed — only a pass that completes with no hit at all is free
// of that contamination, and that is the pass exposeCut later promotes
// to Assimilated[side]. Returns true if at least one augmentation
// occurred.
func (c *Cutter) growAndMaybeAugment(side Side) bool {
	opp := opposite(side)
	augmented := false
	for {
		var hit int32 = -1

		c.reachable[side].Grow(
			c.g,
			func(a int32) bool { return c.shouldFollowArc(side, a) },
			func(a int32) {
				v := c.g.Head(a)
				c.parentArc[v] = a
			},
			func(v int32) bool {
				if c.reachable[opp].Contains(v) || c.assimilated[opp].Contains(v) {
					hit = v

					return false
				}

				return true
			},
		)

		if hit < 0 {
			return augmented
		}

		c.augmentPathTo(side, hit)
		augmented = true
		c.reachable[side].ResetTo(c.assimilated[side], true)
	}
}

// shouldFollowArc reports whether arc a carries spare residual capacity
// in the direction Reachable[side] is expanding. Growing Source follows
// a itself: Tail(a) -> Head(a) must not already be saturated forward.
// Growing Target conceptually follows arcs backward toward the source,
// so the residual direction of interest is Head(a) -> Tail(a), tested
// via a's back-arc instead.
func (c *Cutter) shouldFollowArc(side Side, a int32) bool {
	if side == Target {
		return !c.flow.SaturatedForward(c.g.BackArc(a))
	}

	return !c.flow.SaturatedForward(a)
}

// augmentPathTo walks parentArc back from hit to the first node of
// Assimilated[side] (the root of the grow pass that found hit; parentArc
// entries of assimilated nodes can be left over from earlier passes, so
// the walk never continues past one) and pushes one unit of flow along every arc on the path, in either
// direction depending on side: growing Source follows arcs forward
// (push a itself), growing Target follows them against their own
// orientation (push back(a)), since Reachable[Target] traverses residual
// arcs toward the source but flow direction is always defined source to
// target.
func (c *Cutter) augmentPathTo(side Side, hit int32) {
	v := hit
	for {
		if c.assimilated[side].Contains(v) {
			break
		}
		a := c.parentArc[v]
		if a < 0 {
			break
		}
		back := c.g.BackArc(a)
		if side == Source {
			_ = c.flow.Push(a, back)
		} else {
			_ = c.flow.Push(back, a)
		}
		v = c.g.Tail(a)
	}
	c.flowIntensity++
}
