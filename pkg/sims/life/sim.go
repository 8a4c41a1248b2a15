package life

import (
	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// Name is the registry identifier.
const Name = "cubes"

// Sim runs a lattice for a fixed number of generations.
type Sim struct {
	*evolve.Runner[core.Coord, State]
}

// New creates a simulation of seed under cfg. The seed's dimension must match
// cfg.Dims.
func New(cfg Config, seed *Space, opts ...evolve.Option[core.Coord, State]) (*Sim, error) {
	if seed.Dim() != cfg.Dims {
		return nil, core.Configf("life.New", "seed has dimension %d, want %d", seed.Dim(), cfg.Dims)
	}
	if cfg.Generations < 0 {
		return nil, core.Configf("life.New", "generations %d must not be negative", cfg.Generations)
	}
	nb, err := NewNeighbors(cfg.Dims)
	if err != nil {
		return nil, err
	}
	opts = append([]evolve.Option[core.Coord, State]{evolve.WithWorkers[core.Coord, State](cfg.Workers)}, opts...)
	ev := evolve.New[core.Coord, State](nb, Rule{}, opts...)
	policy := evolve.FixedIterations{N: cfg.Generations}
	return &Sim{Runner: evolve.NewRunner[core.Coord, State](Name, ev, seed, policy)}, nil
}

// Space returns the current generation.
func (s *Sim) Space() *Space { return s.Store().(*Space) }

func (s *Sim) String() string { return s.Space().String() }

func init() {
	core.Register(Name, func(cfg map[string]string, input []string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		seed, err := FromLines(input, c.Dims)
		if err != nil {
			return nil, err
		}
		sim, err := New(c, seed)
		if err != nil {
			return nil, err
		}
		return sim, nil
	}, func(cfg map[string]string) core.ParameterSnapshot {
		c, err := FromMap(cfg)
		if err != nil {
			c = DefaultConfig()
		}
		return c.Parameters()
	})
}
