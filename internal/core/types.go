package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the type-erased contract every registered automaton satisfies. A Sim
// starts Running and becomes Terminated once Done reports true.
type Sim interface {
	Name() string
	// Generation returns how many generations have been applied.
	Generation() int
	// Step applies one generation and returns how many cells changed.
	Step() int
	Done() bool
	// Count returns the summary statistic of the current generation.
	Count() int
	// Reset restores the initial configuration.
	Reset()
}

// Raster is implemented by sims backed by a fixed rectangular grid.
type Raster interface {
	Size() Size
	Cells() []uint8
}

// Factory constructs a Sim from an option map and the input rows.
type Factory func(cfg map[string]string, input []string) (Sim, error)

// Describer is implemented by packages that publish their tunables.
type Describer func(cfg map[string]string) ParameterSnapshot

type entry struct {
	factory  Factory
	describe Describer
}

var sims = map[string]entry{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory, d Describer) {
	if name == "" || f == nil {
		return
	}
	sims[name] = entry{factory: f, describe: d}
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	e, ok := sims[name]
	return e.factory, ok
}

// Describe returns the parameter snapshot for name resolved against cfg.
func Describe(name string, cfg map[string]string) (ParameterSnapshot, bool) {
	e, ok := sims[name]
	if !ok || e.describe == nil {
		return ParameterSnapshot{}, ok
	}
	return e.describe(cfg), true
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New constructs the simulation registered under name.
func New(name string, cfg map[string]string, input []string) (Sim, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, Configf("core.New", "unknown sim %q", name)
	}
	return f(cfg, input)
}
