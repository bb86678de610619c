package cutter

import (
	"math/rand"

	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/flowstate"
	"github.com/arborist-go/fcutter/graphcsr"
	"github.com/arborist-go/fcutter/nodeset"
)

// Side names one of the two terminal regions a Cutter grows.
type Side int

const (
	// Source is the side seeded from the terminal pair's source node.
	Source Side = iota
	// Target is the side seeded from the terminal pair's target node.
	Target
)

func opposite(s Side) Side {
	if s == Source {
		return Target
	}

	return Source
}

// Terminal carries the information a Cutter needs at construction: the
// explicit source/target pair it is seeded from, an optional linear node
// order used for bulk piercing and forced fallback piercing, and an
// identifier distinguishing this instance within an ensemble.
type Terminal struct {
	Source, Target int32
	NodeOrder      []int32 // may be nil; forced/bulk piercing then never fires
	CutterID       int
}

// Cut is a reported cut record: the two assimilated side sizes at the
// moment of report, the flow intensity (== cut size, by max-flow/min-cut
// duality), and the cut-front arcs of the smaller side.
type Cut struct {
	CutterID       int
	SmallSideSize  int
	LargeSideSize  int
	CutSize        int
	CutArcs        []int32
	SmallerSide    Side
}

// Cutter is the BasicCutter state machine of one terminal configuration.
type Cutter struct {
	g   *graphcsr.Graph
	cfg *fcconfig.Config

	flow *flowstate.Flow

	assimilated [2]*nodeset.Set
	reachable   [2]*nodeset.Set
	cutFront    [2][]int32 // arcs leaving Assimilated[s]; see recomputeCutFront

	parentArc []int32 // scratch: arc that discovered node v in the current grow pass

	flowIntensity int
	hasCut        bool
	finished      bool
	side          Side // side currently being grown

	nodeOrder    []int32
	cursorFront  int // Source-side forced/bulk pierce cursor, advances forward
	cursorBack   int // Target-side forced/bulk pierce cursor (exclusive), retreats backward

	sourceDist []int32 // optional; set via SetDistanceLabels
	targetDist []int32

	rng      *rand.Rand
	cutterID int

	lastCut Cut
}

func (c *Cutter) halfN() int {
	return (c.g.NodeCount() + 1) / 2
}
