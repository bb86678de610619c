// Package multicutter runs an ensemble of distcutter.Cutter instances
// concurrently over the same graph and reports the best cut seen by
// any of them. Two scheduling modes are supported: Ordered runs the
// ensemble's cutters in round-robin lockstep so every reported cut at a
// given generation is comparable across cutters; Unordered lets each
// cutter race ahead independently and reports whichever cut scores best
// whenever it is found, via a work-stealing pool of active cutters
// bounded by GOMAXPROCS (or cfg.ThreadCount). Ensembles over graphs
// below ParallelismCutoff run on a single goroutine: fork/join overhead
// would otherwise dominate actual search work.
package multicutter
