package cutter

import "github.com/arborist-go/fcutter/fcconfig"

// chooseSide decides which side's Reachable set to grow next: the
// smaller of the two Reachable sets, ties broken toward Source. Growing
// the smaller side keeps the total traversal work across an enumeration
// closer to the eventual cut size than always growing a fixed side.
func (c *Cutter) chooseSide() Side {
	if c.reachable[Target].Size() < c.reachable[Source].Size() {
		return Target
	}

	return Source
}

// pierce selects and returns the next node to assimilate into side. It
// returns ok=false at once if side already holds ceil(n/2) assimilated
// nodes. Otherwise it tries, in order: an adaptive bulk pierce when one is
// due (bulkPierceIfDue), the best-scoring cut-front candidate under
// cfg.PierceRatingChoice and cfg.AvoidAugmentingChoice, and, when no
// candidate is left, a forced pierce from the node-order cursor. A scored
// candidate is only returned while side is within MaxImbalance. ok=false
// means no node could be pierced on side.
func (c *Cutter) pierce(side Side) (int32, bool) {
	if c.assimilated[side].Size() >= c.halfN() {
		return -1, false
	}

	if v, ok := c.bulkPierceIfDue(side); ok {
		return v, true
	}

	candidates := c.cutFrontCandidates(side)
	if len(candidates) == 0 {
		return c.forcedPierce(side)
	}

	best, ok := c.pickBestCandidate(side, candidates)
	if !ok {
		return c.forcedPierce(side)
	}

	if !c.withinImbalance(side) {
		return -1, false
	}

	return best, true
}

// cutFrontCandidates lists the heads of side's current cut-front arcs
// that belong to neither side yet, i.e. the nodes eligible to be pierced
// next. A node already claimed by the opposite side's Assimilated set is
// never a valid pierce target, even if it still shows up as a cut-front
// head (that just means the two fronts have met at that node).
func (c *Cutter) cutFrontCandidates(side Side) []int32 {
	opp := opposite(side)
	seen := make(map[int32]bool)
	var out []int32
	for _, a := range c.cutFront[side] {
		v := c.g.Head(a)
		if c.assimilated[side].Contains(v) || c.assimilated[opp].Contains(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	return out
}

// pickBestCandidate scores every candidate under the configured pierce
// rating and avoid-augmenting-path policy, returning the winner. Ties
// are broken by candidate order (i.e. arc discovery order), except under
// AvoidAndPickRandom where a uniformly chosen candidate among the
// eligible set is returned.
func (c *Cutter) pickBestCandidate(side Side, candidates []int32) (int32, bool) {
	opp := opposite(side)

	eligible := make([]int32, 0, len(candidates))
	for _, v := range candidates {
		if c.cfg.AvoidAugmentingChoice == fcconfig.DoNotAvoid || !c.reachable[opp].Contains(v) {
			eligible = append(eligible, v)
		}
	}

	pool := eligible
	fellBack := false
	if len(pool) == 0 {
		pool = candidates
		fellBack = true
	}
	if len(pool) == 0 {
		return -1, false
	}

	if !fellBack {
		switch c.cfg.AvoidAugmentingChoice {
		case fcconfig.AvoidAndPickOldest:
			return pool[0], true
		case fcconfig.AvoidAndPickRandom:
			return pool[c.rng.Intn(len(pool))], true
		}
	}

	best := pool[0]
	bestScore := c.scoreCandidate(side, best)
	for _, v := range pool[1:] {
		s := c.scoreCandidate(side, v)
		if s > bestScore {
			best, bestScore = v, s
		}
	}

	return best, true
}

// scoreCandidate computes the pierce-rating score for candidate v on
// side, higher is better. Distance-based ratings fall back to 0 when no
// distance labels have been installed (plain BasicCutter use, as opposed
// to distcutter's DistanceAwareCutter).
func (c *Cutter) scoreCandidate(side Side, v int32) int64 {
	sd, td := c.distOf(Source, v), c.distOf(Target, v)

	switch c.cfg.PierceRatingChoice {
	case fcconfig.MaxTargetMinusSourceHopDist, fcconfig.MaxTargetMinusSourceWeightDist:
		return td - sd
	case fcconfig.MaxTargetMinusSourceHopDistWithSourceDistTieBreak:
		// td-sd in the high bits, the tie-break term in the low bits.
		return (td-sd)<<32 + sd
	case fcconfig.MaxTargetMinusSourceHopDistWithCloserDistTieBreak:
		closer := sd
		if td < closer {
			closer = td
		}

		return (td-sd)<<32 - closer
	case fcconfig.MaxTargetHopDist, fcconfig.MaxTargetWeightDist:
		return td
	case fcconfig.MinSourceHopDist, fcconfig.MinSourceWeightDist:
		return -sd
	case fcconfig.Oldest:
		return 0
	case fcconfig.Random:
		h := hash32(uint32(v) ^ uint32(c.cutterID)*2654435761)

		return int64(h)
	case fcconfig.MaxArcWeight:
		return int64(c.bestIncidentArcWeight(side, v, true))
	case fcconfig.MinArcWeight:
		return int64(c.bestIncidentArcWeight(side, v, false))
	case fcconfig.CircularHop, fcconfig.CircularWeight:
		return circularScore(sd, td)
	default:
		return td - sd
	}
}

func (c *Cutter) distOf(which Side, v int32) int64 {
	var d []int32
	if which == Source {
		d = c.sourceDist
	} else {
		d = c.targetDist
	}
	if d == nil || int(v) >= len(d) {
		return 0
	}

	return int64(d[v])
}

// bestIncidentArcWeight returns the max (or min, if max is false) weight
// among side's cut-front arcs terminating at v.
func (c *Cutter) bestIncidentArcWeight(side Side, v int32, max bool) int32 {
	best := int32(0)
	first := true
	for _, a := range c.cutFront[side] {
		if c.g.Head(a) != v {
			continue
		}
		w := c.g.Weight(a)
		if first || (max && w > best) || (!max && w < best) {
			best, first = w, false
		}
	}

	return best
}

func circularScore(sourceDist, targetDist int64) int64 {
	diff := targetDist - sourceDist
	if diff < 0 {
		diff = -diff
	}

	return -diff
}

func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16

	return x
}

func withinImbalance(assimilated, n int, maxImbalance float64) bool {
	if n == 0 {
		return true
	}

	return float64(assimilated)/float64(n) <= 0.5+maxImbalance
}

func (c *Cutter) withinImbalance(side Side) bool {
	n := c.g.NodeCount()

	return withinImbalance(c.assimilated[side].Size(), n, c.cfg.MaxImbalance)
}
