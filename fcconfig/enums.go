package fcconfig

// PierceRating selects the scoring function used to rank pierce-node
// candidates on the cut front.
type PierceRating int

const (
	// MaxTargetMinusSourceHopDist is the default: maximize target_dist - source_dist on hop distance.
	MaxTargetMinusSourceHopDist PierceRating = iota
	// MaxTargetMinusSourceWeightDist is the weighted-distance analogue of the default.
	MaxTargetMinusSourceWeightDist
	// MaxTargetHopDist maximizes hop distance to the target.
	MaxTargetHopDist
	// MaxTargetWeightDist maximizes weighted distance to the target.
	MaxTargetWeightDist
	// MinSourceHopDist maximizes -hop distance from the source (i.e. picks the closest node to source).
	MinSourceHopDist
	// MinSourceWeightDist is the weighted-distance analogue of MinSourceHopDist.
	MinSourceWeightDist
	// Oldest always scores 0, so the first eligible candidate by arc order wins.
	Oldest
	// Random scores by a deterministic hash of the node id.
	Random
	// MaxArcWeight maximizes the weight of the cut-front arc being considered.
	MaxArcWeight
	// MinArcWeight minimizes the weight of the cut-front arc being considered.
	MinArcWeight
	// CircularHop blends hop distances from both terminals in a wraparound fashion.
	CircularHop
	// CircularWeight is the weighted-distance analogue of CircularHop.
	CircularWeight
	// MaxTargetMinusSourceHopDistWithSourceDistTieBreak breaks ties on source_dist.
	MaxTargetMinusSourceHopDistWithSourceDistTieBreak
	// MaxTargetMinusSourceHopDistWithCloserDistTieBreak breaks ties on -min(source_dist, target_dist).
	MaxTargetMinusSourceHopDistWithCloserDistTieBreak
)

// AvoidAugmentingPath selects how piercing treats candidates that are
// already reachable from the opposite side (and would therefore immediately
// create an augmenting path rather than a new cut).
type AvoidAugmentingPath int

const (
	// AvoidAndPickBest is the default: prefer candidates that avoid an
	// augmenting path, but fall back to the best-scoring candidate overall
	// if none do.
	AvoidAndPickBest AvoidAugmentingPath = iota
	// DoNotAvoid ignores the avoids_augmenting_path component of the score entirely.
	DoNotAvoid
	// AvoidAndPickOldest avoids augmenting candidates and otherwise picks the oldest.
	AvoidAndPickOldest
	// AvoidAndPickRandom avoids augmenting candidates and otherwise picks at random.
	AvoidAndPickRandom
)

// GraphSearchAlgorithm selects the traversal discipline Reachable/Assimilated
// sets use when growing.
type GraphSearchAlgorithm int

const (
	// PseudoDepthFirstSearch is the default traversal discipline.
	PseudoDepthFirstSearch GraphSearchAlgorithm = iota
	// BreadthFirstSearch grows sets breadth-first. Distance labels for
	// piercing are computed separately by distcutter and do not depend on it.
	BreadthFirstSearch
	// DepthFirstSearch is reserved; not implemented by any cutter component.
	DepthFirstSearch
)

// SeparatorSelection selects which engine (and cut-front granularity)
// computes vertex separators for the nested-dissection driver.
type SeparatorSelection int

const (
	// NodeMinExpansion is the default: FlowCutter on the expanded graph,
	// selecting the cut minimizing cut_size/small_side_size.
	NodeMinExpansion SeparatorSelection = iota
	// EdgeMinExpansion is the arc-cut analogue (no node expansion, direct FlowCutter on G).
	EdgeMinExpansion
	// NodeFirst selects by smallest vertex-separator size; balance only breaks ties.
	NodeFirst
	// EdgeFirst selects by smallest arc-cut size; balance only breaks ties.
	EdgeFirst
)
