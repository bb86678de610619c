// Package distcutter implements DistanceAwareCutter: a cutter.Cutter
// wrapped with precomputed node-distance labels from both terminals, fed
// to the configured distance-based pierce rating, and optionally used to
// rebuild the forced/bulk piercing node order from target_dist -
// source_dist before the underlying cutter runs its first Advance.
//
// Distance labels are computed by unweighted BFS, Dijkstra-style
// weighted relaxation, or a terminal-set BFS seeded from more than one
// root. The terminal-set BFS is used when fcconfig.Config.BulkDistance is
// set and the terminal carries a node order; otherwise the choice follows
// fcconfig.Config.PierceRatingChoice (Weight-named ratings get weighted
// distances, all others hop distances), whatever the arc weights are.
// Labeling runs once per terminal at construction and is
// never recomputed mid-enumeration: the residual graph changes as
// Advance augments flow, but distance labels are a piercing heuristic,
// not a correctness requirement, so staleness only affects which cut is
// found next, never whether the enumerated cuts are valid.
package distcutter
