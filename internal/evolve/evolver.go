package evolve

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny generations on a single goroutine.
const minChunk = 256

// Observer is notified after every generation.
type Observer[K comparable, S comparable] func(generation, changed int, store Store[K, S])

// Result summarises a completed run.
type Result[K comparable, S comparable] struct {
	Store       Store[K, S]
	Generations int
	// Changed is the changed-cell count of the final generation, or -1 when no
	// generation ran.
	Changed int
	Count   int
}

// Evolver applies a Rule over a Neighborhood.
type Evolver[K comparable, S comparable] struct {
	nb       Neighborhood[K, S]
	rule     Rule[S]
	workers  int
	log      *zap.Logger
	observer Observer[K, S]
}

// Option configures an Evolver.
type Option[K comparable, S comparable] func(*Evolver[K, S])

// WithWorkers sets how many goroutines evaluate a generation. Values below one
// select runtime.GOMAXPROCS.
func WithWorkers[K comparable, S comparable](n int) Option[K, S] {
	return func(e *Evolver[K, S]) { e.workers = n }
}

// WithLogger replaces the default zap.L() logger.
func WithLogger[K comparable, S comparable](l *zap.Logger) Option[K, S] {
	return func(e *Evolver[K, S]) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver installs a per-generation callback.
func WithObserver[K comparable, S comparable](fn Observer[K, S]) Option[K, S] {
	return func(e *Evolver[K, S]) { e.observer = fn }
}

// New returns an Evolver for the given neighbourhood and rule.
func New[K comparable, S comparable](nb Neighborhood[K, S], rule Rule[S], opts ...Option[K, S]) *Evolver[K, S] {
	e := &Evolver[K, S]{nb: nb, rule: rule, log: zap.L().Named("evolve")}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Step computes one generation. The returned store is new; store is left
// untouched.
func (e *Evolver[K, S]) Step(store Store[K, S]) (Store[K, S], int) {
	keys := store.Candidates()
	next := make([]S, len(keys))

	chunk := (len(keys) + e.workers - 1) / e.workers
	if chunk < minChunk {
		chunk = minChunk
	}
	slots := (len(keys) + chunk - 1) / chunk
	changed := make([]int, slots)

	var g errgroup.Group
	g.SetLimit(e.workers)
	for slot := 0; slot < slots; slot++ {
		lo := slot * chunk
		hi := min(lo+chunk, len(keys))
		g.Go(func() error {
			changed[slot] = e.evaluate(store, keys[lo:hi], next[lo:hi])
			return nil
		})
	}
	// Workers only write their own slots and never return an error.
	g.Wait()

	total := 0
	for _, n := range changed {
		total += n
	}
	return store.Apply(keys, next), total
}

// evaluate fills out for keys and returns how many states differ from snap.
func (e *Evolver[K, S]) evaluate(snap Snapshot[K, S], keys []K, out []S) int {
	changed := 0
	for i, k := range keys {
		cur, _ := snap.At(k)
		out[i] = e.rule.Next(cur, e.nb.Count(snap, k))
		if out[i] != cur {
			changed++
		}
	}
	return changed
}

// Run steps store until policy stops it. The context is checked between
// generations only.
func (e *Evolver[K, S]) Run(ctx context.Context, store Store[K, S], policy Policy) (Result[K, S], error) {
	res := Result[K, S]{Store: store, Changed: -1}
	for policy.Continue(res.Generations, res.Changed) {
		if err := ctx.Err(); err != nil {
			res.Count = res.Store.Count()
			return res, err
		}
		res.Store, res.Changed = e.Step(res.Store)
		res.Generations++
		e.notify(res.Generations, res.Changed, res.Store)
	}
	res.Count = res.Store.Count()
	e.log.Debug("run finished",
		zap.Stringer("policy", policy),
		zap.Int("generations", res.Generations),
		zap.Int("count", res.Count))
	return res, nil
}

func (e *Evolver[K, S]) notify(generation, changed int, store Store[K, S]) {
	if ce := e.log.Check(zap.DebugLevel, "generation"); ce != nil {
		ce.Write(zap.Int("generation", generation), zap.Int("changed", changed), zap.Int("count", store.Count()))
	}
	if e.observer != nil {
		e.observer(generation, changed, store)
	}
}
