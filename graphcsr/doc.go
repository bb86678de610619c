// Package graphcsr provides an immutable, CSR-style (compressed sparse row)
// directed graph container used as the ground representation for the
// FlowCutter cutter and the nested-dissection driver.
//
// A Graph stores three parallel arrays of length ArcCount(): Tail, Head and
// Weight, plus a CSR offset array FirstOut of length NodeCount()+1 so that
// the outgoing arcs of vertex v are the half-open range
// [FirstOut[v], FirstOut[v+1]) into the arc arrays. A fourth array, BackArc,
// is the involution pairing every arc with its antiparallel twin:
// Tail[BackArc[a]] == Head[a] and Head[BackArc[a]] == Tail[a].
//
// Graphs are built once (via Build) and their arcs are never mutated in
// place (ComputeBackArc only attaches the BackArc permutation); operations
// that change topology (Symmetrize, Deduplicate, SortArcsByTailThenHead)
// return a new Graph. This mirrors core.Graph's clone-on-write methods, but
// trades the map-of-maps adjacency list for flat arrays: the cutter touches
// every arc of the current cut front on every advance, so index-addressable
// storage (no map lookups, no pointer chasing) matters on road-network-scale
// inputs.
//
// Complexity notes are given per-method; all are relative to n = NodeCount()
// and m = ArcCount().
package graphcsr

import "errors"

// Sentinel errors for graphcsr operations.
var (
	// ErrAsymmetric indicates an arc has no matching reverse arc.
	ErrAsymmetric = errors.New("graphcsr: graph is not symmetric")
	// ErrLoop indicates a self-loop was found where loops are disallowed.
	ErrLoop = errors.New("graphcsr: self-loop present")
	// ErrParallelArc indicates more than one arc shares the same (tail, head) pair.
	ErrParallelArc = errors.New("graphcsr: parallel arc present")
	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("graphcsr: node index out of range")
	// ErrArcOutOfRange indicates an arc index outside [0, ArcCount()).
	ErrArcOutOfRange = errors.New("graphcsr: arc index out of range")
	// ErrLengthMismatch indicates the tail/head/weight slices passed to Build differ in length.
	ErrLengthMismatch = errors.New("graphcsr: tail/head/weight length mismatch")
	// ErrNegativeWeight indicates a negative arc weight was supplied.
	ErrNegativeWeight = errors.New("graphcsr: negative arc weight")
)
