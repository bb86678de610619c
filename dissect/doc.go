// Package dissect implements the parallel nested-dissection driver: it
// repeatedly splits a graph with a vertex (or arc) separator, recurses
// independently on the two resulting sides, and concatenates the
// recursive orders with the separator appended last, producing a node
// order suitable for CCH (customizable contraction hierarchy)
// construction on road-network-scale sparse graphs.
//
// The driver detects and short-circuits trivial inputs (singletons,
// cliques, trees) and disconnected components, applies a degree-2
// chain-contraction reduction before paying for a separator search, and
// spawns the two recursive halves on separate goroutines once a
// subgraph is larger than TaskSpawnCutoff.
package dissect
