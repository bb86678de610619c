// Package cutter implements BasicCutter: the incremental piercing-based
// max-flow/min-cut state machine that grows two terminal regions (Source,
// Target), maintains a maximum unit-capacity flow between them across every
// balance point, and enumerates a sequence of cuts of monotonically
// increasing cardinality.
//
// A Cutter owns, exclusively, everything the state machine touches: a
// flowstate.Flow, four nodeset.Set values (Assimilated/Reachable per side),
// a per-node predecessor-arc scratch array used to recover augmenting
// paths, and the node-order cursor used for forced and bulk piercing. There
// are no back-pointers between these pieces — the Cutter aggregate is the
// single owner, and its methods borrow views into the sub-objects as
// needed, per the "cyclic references" design note: flow state and
// assimilated sets would otherwise observe each other circularly.
//
// Callers drive a Cutter with repeated Advance() calls:
//
//	for cutter.Advance() {
//	    if cut, ok := cutter.CurrentCut(); ok {
//	        // handle cut
//	    }
//	}
//
// Cuts are produced by this state machine rather than a generator; there is
// no coroutine or channel involved, keeping a single cutter's advance a
// synchronous, allocation-light call.
package cutter
