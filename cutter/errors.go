package cutter

import "errors"

// Sentinel errors for cutter construction and operation.
var (
	// ErrTerminalOutOfRange indicates a source/target node id outside [0, n).
	ErrTerminalOutOfRange = errors.New("cutter: source/target node id out of range")
	// ErrSourceEqualsTarget indicates source and target name the same node.
	ErrSourceEqualsTarget = errors.New("cutter: source and target must differ")
	// ErrGraphNotSymmetric indicates the graph lacks a usable back-arc permutation.
	ErrGraphNotSymmetric = errors.New("cutter: graph has no back-arc permutation; call ComputeBackArc first")
	// ErrNegativeWeightUnderDistancePolicy indicates a distance-based pierce
	// rating was requested over a graph carrying a negative arc weight.
	ErrNegativeWeightUnderDistancePolicy = errors.New("cutter: negative arc weight under a distance-based pierce policy")
)
