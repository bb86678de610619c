package dissect

import (
	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
)

// bestCutScore ranks a cut for the *MinExpansion separator selections:
// the base score is the expansion ratio cut_size/small_side_size (lower
// is better), with a large bonus subtracted once the cut already
// satisfies cfg.MaxImbalance, so a balanced cut always outranks an
// unbalanced one of the same or slightly smaller expansion ratio.
func bestCutScore(cut cutter.Cut, cfg *fcconfig.Config) float64 {
	small := cut.SmallSideSize
	if small == 0 {
		small = 1
	}
	score := float64(cut.CutSize) / float64(small)

	total := cut.SmallSideSize + cut.LargeSideSize
	if total > 0 {
		imb := 1 - 2*float64(cut.SmallSideSize)/float64(total)
		if imb <= cfg.MaxImbalance {
			score -= 1000
		}
	}

	return score
}

// orderCutArcs orients every arc in arcs so it and its back-arc are
// listed small-side-first: the arc whose tail lies in the smaller side
// (per smallSide) is kept as reported, and one whose tail lies in the
// larger side is replaced by its back-arc, so a consumer reading arcs in
// order always crosses from the small side into the large side.
func orderCutArcs(g *graphcsr.Graph, arcs []int32, tailInSmallSide func(v int32) bool) []int32 {
	out := make([]int32, len(arcs))
	for i, a := range arcs {
		if tailInSmallSide(g.Tail(a)) {
			out[i] = a
			continue
		}
		if g.HasBackArc() {
			out[i] = g.BackArc(a)
			continue
		}
		out[i] = a
	}

	return out
}
