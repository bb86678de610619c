package fcconfig

import "math"

// Config is the fully resolved, validated configuration for one cutter
// ensemble run (the set of options enumerated in spec §6). Config is
// immutable after New returns it.
type Config struct {
	PierceRatingChoice    PierceRating
	AvoidAugmentingChoice AvoidAugmentingPath
	SearchAlgorithm       GraphSearchAlgorithm
	SeparatorChoice       SeparatorSelection

	BulkDistance       bool
	BulkDistanceFactor float64

	MinBalance float64

	MaxImbalance                float64
	MaxCutSize                  int
	CutterCount                 int
	GeoPosOrderingCutterCount   int
	DistanceOrderingCutterCount int

	BulkAssimilationThreshold      float64
	BulkAssimilationOrderThreshold float64
	InitialAssimilatedFraction    float64
	BulkStepFraction              float64

	RandomSeed  uint64
	ThreadCount int
	ReportCuts  bool
	DumpState   bool
}

// Option mutates a Config during New.
type Option func(*Config)

// New returns a Config with documented defaults, then applies opts in
// order, then validates. Complexity: O(len(opts)).
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		PierceRatingChoice:    MaxTargetMinusSourceHopDist,
		AvoidAugmentingChoice: AvoidAndPickBest,
		SearchAlgorithm:       PseudoDepthFirstSearch,
		SeparatorChoice:       NodeMinExpansion,

		BulkDistance:       false,
		BulkDistanceFactor: 0.05,

		MinBalance: 0.25,

		MaxImbalance:                0.4,
		MaxCutSize:                  math.MaxInt32,
		CutterCount:                 4,
		GeoPosOrderingCutterCount:   4,
		DistanceOrderingCutterCount: 16,

		BulkAssimilationThreshold:      0.4,
		BulkAssimilationOrderThreshold: 0.15,
		InitialAssimilatedFraction:     0.05,
		BulkStepFraction:               0.05,

		RandomSeed:  0,
		ThreadCount: 0, // 0 means "use runtime.GOMAXPROCS(0)"
		ReportCuts:  false,
		DumpState:   false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxImbalance <= 0 || c.MaxImbalance > 0.5 {
		return invalid("MaxImbalance", "must be in (0, 0.5]")
	}
	if c.MaxCutSize < 0 {
		return invalid("MaxCutSize", "must be non-negative")
	}
	if c.CutterCount < 1 {
		return invalid("CutterCount", "must be at least 1")
	}
	if c.BulkDistanceFactor <= 0 || c.BulkDistanceFactor > 1 {
		return invalid("BulkDistanceFactor", "must be in (0, 1]")
	}
	if c.MinBalance <= 0 || c.MinBalance > 0.5 {
		return invalid("MinBalance", "must be in (0, 0.5]")
	}
	if c.BulkAssimilationThreshold < 0 || c.BulkAssimilationThreshold > 0.5 {
		return invalid("BulkAssimilationThreshold", "must be in [0, 0.5]")
	}
	if c.BulkAssimilationOrderThreshold < 0 || c.BulkAssimilationOrderThreshold > 1 {
		return invalid("BulkAssimilationOrderThreshold", "must be in [0, 1]")
	}
	if c.InitialAssimilatedFraction < 0 || c.InitialAssimilatedFraction > 0.5 {
		return invalid("InitialAssimilatedFraction", "must be in [0, 0.5]")
	}
	if c.BulkStepFraction <= 0 || c.BulkStepFraction > 1 {
		return invalid("BulkStepFraction", "must be in (0, 1]")
	}
	if c.ThreadCount < 0 {
		return invalid("ThreadCount", "must be non-negative")
	}
	if c.SearchAlgorithm == DepthFirstSearch {
		return invalid("SearchAlgorithm", "depth_first_search is reserved and not implemented")
	}

	return nil
}

// WithPierceRating selects the pierce-node scoring function.
func WithPierceRating(r PierceRating) Option { return func(c *Config) { c.PierceRatingChoice = r } }

// WithAvoidAugmentingPath selects the augmenting-path avoidance policy.
func WithAvoidAugmentingPath(a AvoidAugmentingPath) Option {
	return func(c *Config) { c.AvoidAugmentingChoice = a }
}

// WithGraphSearchAlgorithm selects BFS vs pseudo-DFS for set growth.
func WithGraphSearchAlgorithm(m GraphSearchAlgorithm) Option {
	return func(c *Config) { c.SearchAlgorithm = m }
}

// WithSeparatorSelection selects the separator-scoring strategy.
func WithSeparatorSelection(s SeparatorSelection) Option {
	return func(c *Config) { c.SeparatorChoice = s }
}

// WithBulkDistance enables/disables the node-order-from-distance rebuild in
// distcutter.New, which then also labels distances by terminal-set BFS
// when the terminal carries a node order.
func WithBulkDistance(yes bool) Option { return func(c *Config) { c.BulkDistance = yes } }

// WithBulkDistanceFactor sets the terminal-set-BFS seed fraction.
func WithBulkDistanceFactor(f float64) Option { return func(c *Config) { c.BulkDistanceFactor = f } }

// WithMinBalance sets the extreme-fraction inertial flow draws its
// source/sink terminal sets from: ⌈MinBalance·n⌉ nodes at each end of a
// projection axis, in (0, 0.5].
func WithMinBalance(f float64) Option { return func(c *Config) { c.MinBalance = f } }

// WithMaxImbalance sets the maximum allowed imbalance, in (0, 0.5].
func WithMaxImbalance(f float64) Option { return func(c *Config) { c.MaxImbalance = f } }

// WithMaxCutSize bounds the cut size a cutter will report before giving up.
func WithMaxCutSize(n int) Option { return func(c *Config) { c.MaxCutSize = n } }

// WithCutterCount sets CutterCount, which New checks is at least 1. No
// package in this module reads it: a MultiCutter pool has one cutter per
// terminal, GeoPosOrderingCutterCount + DistanceOrderingCutterCount of
// them (see cutterfactory.Build).
func WithCutterCount(n int) Option { return func(c *Config) { c.CutterCount = n } }

// WithGeoPosOrderingCutterCount sets how many of the ensemble's cutters use
// geometric-projection terminal orders.
func WithGeoPosOrderingCutterCount(n int) Option {
	return func(c *Config) { c.GeoPosOrderingCutterCount = n }
}

// WithDistanceOrderingCutterCount sets how many of the ensemble's cutters
// use random source/target pairs with distance-based node orders.
func WithDistanceOrderingCutterCount(n int) Option {
	return func(c *Config) { c.DistanceOrderingCutterCount = n }
}

// WithBulkAssimilationThreshold bounds the bulk-piercing fraction of n.
func WithBulkAssimilationThreshold(f float64) Option {
	return func(c *Config) { c.BulkAssimilationThreshold = f }
}

// WithBulkAssimilationOrderThreshold bounds how far into the node order
// bulk piercing may reach.
func WithBulkAssimilationOrderThreshold(f float64) Option {
	return func(c *Config) { c.BulkAssimilationOrderThreshold = f }
}

// WithInitialAssimilatedFraction sets the initial bulk-pierce fraction at cutter init.
func WithInitialAssimilatedFraction(f float64) Option {
	return func(c *Config) { c.InitialAssimilatedFraction = f }
}

// WithBulkStepFraction sets the per-bulk-piercing-step chunk fraction.
func WithBulkStepFraction(f float64) Option { return func(c *Config) { c.BulkStepFraction = f } }

// WithRandomSeed sets the base RNG seed; each cutter derives its own seed
// from this value and its cutter id.
func WithRandomSeed(seed uint64) Option { return func(c *Config) { c.RandomSeed = seed } }

// WithThreadCount bounds the number of worker goroutines MultiCutter uses
// in Unordered mode. 0 means "use all available processors". The
// nested-dissection driver (dissect.Order) does not read it.
func WithThreadCount(n int) Option { return func(c *Config) { c.ThreadCount = n } }

// WithReportCuts sets Config.ReportCuts. The flag is only stored; no
// package in this module reads it or emits cut records.
func WithReportCuts(yes bool) Option { return func(c *Config) { c.ReportCuts = yes } }

// WithDumpState sets Config.DumpState. The flag is only stored; no
// package in this module reads it or dumps cutter state.
func WithDumpState(yes bool) Option { return func(c *Config) { c.DumpState = yes } }
