package evolve

// Runner drives an Evolver one generation at a time under a Policy. It
// satisfies core.Sim so configured automata can live in the sim registry.
type Runner[K comparable, S comparable] struct {
	name    string
	ev      *Evolver[K, S]
	policy  Policy
	initial Store[K, S]

	store   Store[K, S]
	gen     int
	changed int
}

// NewRunner wraps ev and the initial store under the given policy.
func NewRunner[K comparable, S comparable](name string, ev *Evolver[K, S], initial Store[K, S], policy Policy) *Runner[K, S] {
	return &Runner[K, S]{name: name, ev: ev, policy: policy, initial: initial, store: initial, changed: -1}
}

// Name returns the simulation identifier.
func (r *Runner[K, S]) Name() string { return r.name }

// Generation returns the number of generations applied so far.
func (r *Runner[K, S]) Generation() int { return r.gen }

// Changed returns the changed-cell count of the last generation, -1 before the
// first one.
func (r *Runner[K, S]) Changed() int { return r.changed }

// Done reports whether the policy has terminated the run.
func (r *Runner[K, S]) Done() bool { return !r.policy.Continue(r.gen, r.changed) }

// Step applies one generation. Stepping a terminated runner is a no-op that
// reports zero changes.
func (r *Runner[K, S]) Step() int {
	if r.Done() {
		return 0
	}
	r.store, r.changed = r.ev.Step(r.store)
	r.gen++
	r.ev.notify(r.gen, r.changed, r.store)
	return r.changed
}

// Count returns the summary statistic of the current generation.
func (r *Runner[K, S]) Count() int { return r.store.Count() }

// Store returns the current generation.
func (r *Runner[K, S]) Store() Store[K, S] { return r.store }

// Reset rewinds to the initial store.
func (r *Runner[K, S]) Reset() {
	r.store = r.initial
	r.gen = 0
	r.changed = -1
}
