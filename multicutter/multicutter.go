package multicutter

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/arborist-go/fcutter/cutter"
	"github.com/arborist-go/fcutter/distcutter"
	"github.com/arborist-go/fcutter/fcconfig"
	"github.com/arborist-go/fcutter/graphcsr"
	"golang.org/x/sync/errgroup"
)

// ParallelismCutoff is the node count below which an ensemble runs on a
// single goroutine regardless of cfg.ThreadCount: fork/join setup would
// dominate the actual search work on graphs this small.
const ParallelismCutoff = 5000

// Mode selects how the ensemble's cutters are scheduled relative to
// each other.
type Mode int

const (
	// Ordered runs every cutter's k-th Advance before any cutter's
	// (k+1)-th, so cuts reported at the same generation are comparable.
	Ordered Mode = iota
	// Unordered lets cutters race independently; a work-stealing pool
	// bounded by cfg.ThreadCount (or GOMAXPROCS) keeps that many cutters
	// actively advancing at once.
	Unordered
)

// ScoreFunc ranks a reported cut; BestCut keeps the cut with the lowest
// score. A nil ScoreFunc (the default) falls back to plain cut-size
// comparison with an imbalance tie-break.
type ScoreFunc func(cutter.Cut) float64

// Pool is an ensemble of DistanceAwareCutters sharing a graph and
// configuration.
type Pool struct {
	cutters []*distcutter.Cutter
	cfg     *fcconfig.Config
	mode    Mode
	n       int
	score   ScoreFunc

	active []int32 // test-and-set flags: set to 1 once a goroutine claims cutters[i], never cleared
}

// New builds one distcutter.Cutter per terminal, via cutterfactory.Build
// output, ready to run under mode.
func New(g *graphcsr.Graph, cfg *fcconfig.Config, terminals []cutter.Terminal, mode Mode) (*Pool, error) {
	p := &Pool{
		cfg:    cfg,
		mode:   mode,
		n:      g.NodeCount(),
		active: make([]int32, len(terminals)),
	}
	for _, term := range terminals {
		c, err := distcutter.New(g, cfg, term)
		if err != nil {
			return nil, err
		}
		p.cutters = append(p.cutters, c)
	}

	return p, nil
}

// WithScoreFunc installs a custom cut-ranking function, used by callers
// that need a selection rule other than plain smallest-cut-size (e.g.
// a cut_size/small_side_size expansion ratio). Must be called before
// BestCut.
func (p *Pool) WithScoreFunc(score ScoreFunc) *Pool {
	p.score = score

	return p
}

// BestCut runs every cutter in the pool to completion (or until ctx is
// canceled) and returns the best cut reported by any of them: the lowest
// score under WithScoreFunc, otherwise the smallest cut with ties broken
// by the best balance (closer to n/2). In Unordered mode at most
// cfg.ThreadCount cutters advance concurrently (0 means GOMAXPROCS),
// never more than the pool holds.
func (p *Pool) BestCut(ctx context.Context) (cutter.Cut, bool, error) {
	if p.n < ParallelismCutoff || len(p.cutters) <= 1 {
		return p.runSequential(ctx)
	}

	switch p.mode {
	case Unordered:
		return p.runUnordered(ctx)
	default:
		return p.runOrdered(ctx)
	}
}

func (p *Pool) runSequential(ctx context.Context) (cutter.Cut, bool, error) {
	var best cutter.Cut
	found := false
	for _, c := range p.cutters {
		if err := ctx.Err(); err != nil {
			return best, found, err
		}
		p.drainToBest(c, &best, &found)
	}

	return best, found, nil
}

// runOrdered advances every cutter's k-th step in lockstep, generation
// by generation, so cuts from the same generation are directly
// comparable (the scheduling mode a deterministic comparative ensemble
// run expects).
func (p *Pool) runOrdered(ctx context.Context) (cutter.Cut, bool, error) {
	var best cutter.Cut
	found := false

	for {
		anyAdvanced := false
		for _, c := range p.cutters {
			if err := ctx.Err(); err != nil {
				return best, found, err
			}
			if c.Finished() {
				continue
			}
			if c.Advance() {
				anyAdvanced = true
				if cut, ok := c.CurrentCut(); ok {
					p.considerCut(cut, &best, &found)
				}
			}
		}
		if !anyAdvanced {
			break
		}
	}

	return best, found, nil
}

// runUnordered runs a work-stealing pool of goroutines: each worker
// repeatedly test-and-sets the active flag of an idle cutter, drains it
// to completion, and moves to the next idle one, until every cutter has
// been claimed and finished.
func (p *Pool) runUnordered(ctx context.Context) (cutter.Cut, bool, error) {
	workers := p.cfg.ThreadCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(p.cutters) {
		workers = len(p.cutters)
	}

	var mu sync.Mutex
	var best cutter.Cut
	found := false

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				idx := p.claimIdle()
				if idx < 0 {
					return nil
				}
				var localBest cutter.Cut
				localFound := false
				p.drainToBest(p.cutters[idx], &localBest, &localFound)
				if localFound {
					mu.Lock()
					p.considerCut(localBest, &best, &found)
					mu.Unlock()
				}
			}
		})
	}

	err := g.Wait()

	return best, found, err
}

// CutterByID returns the pool's cutter with the given ensemble id (as
// reported on a cutter.Cut), for callers that need to classify every
// node's side after BestCut returns. ok is false if no cutter in the
// pool carries that id.
func (p *Pool) CutterByID(id int) (*distcutter.Cutter, bool) {
	for _, c := range p.cutters {
		if c.CutterID() == id {
			return c, true
		}
	}

	return nil, false
}

// claimIdle returns the index of an unclaimed cutter and atomically
// marks it claimed, or -1 once every cutter has been claimed.
func (p *Pool) claimIdle() int {
	for i := range p.active {
		if atomic.CompareAndSwapInt32(&p.active[i], 0, 1) {
			return i
		}
	}

	return -1
}

func (p *Pool) drainToBest(c *distcutter.Cutter, best *cutter.Cut, found *bool) {
	for c.Advance() {
		if cut, ok := c.CurrentCut(); ok {
			p.considerCut(cut, best, found)
		}
	}
}

// considerCut keeps the better of cut and *best, per p.score if set,
// falling back to smallest cut size with an imbalance tie-break.
func (p *Pool) considerCut(cut cutter.Cut, best *cutter.Cut, found *bool) {
	if !*found {
		*best, *found = cut, true

		return
	}
	if p.betterCut(cut, *best) {
		*best = cut
	}
}

func (p *Pool) betterCut(a, b cutter.Cut) bool {
	if p.score != nil {
		return p.score(a) < p.score(b)
	}
	if a.CutSize != b.CutSize {
		return a.CutSize < b.CutSize
	}

	return imbalance(a) < imbalance(b)
}

func imbalance(c cutter.Cut) float64 {
	total := c.SmallSideSize + c.LargeSideSize
	if total == 0 {
		return 0
	}

	return 1 - 2*float64(c.SmallSideSize)/float64(total)
}
