// Package inertialflow computes a vertex bipartition from unit-capacity
// max-flow between the extreme nodes of a geometric projection: the
// source set is the fraction-n nodes with the smallest projected
// coordinate, the sink set the fraction-n nodes with the largest, and
// the cut is the minimum s-t cut between those two sets.
//
// The multi-source/multi-sink query is reduced to the single-terminal
// form cutter.Cutter expects by attaching two virtual nodes
// (graphcsr.Graph.WithVirtualTerminal), one per endpoint set, and
// draining the resulting cutter to its first stall: by max-flow/min-cut
// duality that stall is already the global minimum cut of the augmented
// graph, so no further Advance calls or cut-size comparison are needed.
package inertialflow
