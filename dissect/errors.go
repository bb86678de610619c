package dissect

import "errors"

// ErrNoSeparatorFound indicates every cutter in the ensemble stalled
// without ever exposing a non-trivial cut (e.g. an edgeless graph with
// more than one component that component detection failed to catch).
var ErrNoSeparatorFound = errors.New("dissect: no separator could be computed for this subgraph")
