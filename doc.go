// Package fcutter computes CCH-suitable vertex elimination orders for
// road-network-scale sparse graphs via an incremental, flow-based graph
// bisection method ("FlowCutter") driving a parallel nested-dissection
// pipeline.
//
// Subpackages:
//
//	graphcsr/      — immutable CSR graph container, the shared read-only
//	                 input every other package operates on
//	flowstate/     — packed unit-capacity flow storage over a graph's arcs
//	nodeset/       — incremental, resumable Reachable/Assimilated node sets
//	fcconfig/      — resolved, validated run configuration and its options
//	cutter/        — the BasicCutter incremental min-cut state machine
//	distcutter/    — distance-label-aware wrapper around cutter.Cutter
//	geopos/        — geographic projections feeding inertial-flow terminal
//	                 selection
//	inertialflow/  — multi-source/multi-sink max-flow reduction used to
//	                 seed geometric bisections
//	cutterfactory/ — builds an ensemble's terminal pairs from geo and
//	                 random sources
//	multicutter/   — runs an ensemble of cutters and selects the best cut
//	expandedgraph/ — node-split transform turning vertex separators into
//	                 arc cuts
//	dissect/       — the nested-dissection driver tying the packages
//	                 above, all but inertialflow, into one
//	                 elimination-order computation
//
// A typical call site builds a graphcsr.Graph, resolves an fcconfig.Config,
// and calls dissect.Order to get back a full permutation of the graph's
// nodes.
package fcutter
