// Package evolve drives cellular automata one generation at a time. Every
// neighbour statistic is computed against the previous generation's Snapshot
// and the next generation is assembled from scratch, so cells can be visited in
// any order or in parallel without changing the outcome.
package evolve

// Snapshot is a read-only view of one generation.
type Snapshot[K comparable, S comparable] interface {
	// At returns the state held at k. ok is false when k lies outside the
	// store's domain (for example beyond the edge of a bounded grid).
	At(k K) (s S, ok bool)
}

// Store is one immutable generation of an automaton.
type Store[K comparable, S comparable] interface {
	Snapshot[K, S]
	// Candidates lists every coordinate whose next state must be evaluated.
	Candidates() []K
	// Apply builds the next generation from the evaluated candidates. It must
	// not modify the receiver.
	Apply(keys []K, states []S) Store[K, S]
	// Count returns the summary statistic (occupied or active cells).
	Count() int
}

// Neighborhood computes the neighbour statistic of k in snap.
type Neighborhood[K comparable, S comparable] interface {
	Count(snap Snapshot[K, S], k K) int
}

// Rule maps a cell's current state and neighbour statistic to its next state.
type Rule[S comparable] interface {
	Next(cur S, neighbors int) S
}

// Policy decides whether another generation should run.
type Policy interface {
	// Continue is consulted before every generation. lastChanged is -1 before
	// the first generation.
	Continue(generation, lastChanged int) bool
	String() string
}

// Fixpoint runs until a generation changes nothing. The automaton must
// converge; cycles are not detected and would loop forever.
type Fixpoint struct{}

func (Fixpoint) Continue(_, lastChanged int) bool { return lastChanged != 0 }

func (Fixpoint) String() string { return "fixpoint" }

// FixedIterations runs exactly N generations regardless of convergence.
type FixedIterations struct {
	N int
}

func (p FixedIterations) Continue(generation, _ int) bool { return generation < p.N }

func (p FixedIterations) String() string { return "fixed" }
