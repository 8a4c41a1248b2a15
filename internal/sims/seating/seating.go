package seating

import (
	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// Name is the registry identifier.
const Name = "seating"

// Sim runs a seating area to its fixpoint.
type Sim struct {
	*evolve.Runner[core.Coord, Status]
}

// New creates a simulation of initial under cfg.
func New(cfg Config, initial *Layout, opts ...evolve.Option[core.Coord, Status]) (*Sim, error) {
	nb, err := cfg.Mode.Neighborhood()
	if err != nil {
		return nil, err
	}
	if cfg.Threshold <= 0 {
		return nil, core.Configf("seating.New", "threshold %d must be positive", cfg.Threshold)
	}
	opts = append([]evolve.Option[core.Coord, Status]{evolve.WithWorkers[core.Coord, Status](cfg.Workers)}, opts...)
	ev := evolve.New[core.Coord, Status](nb, cfg.Rule(), opts...)
	return &Sim{Runner: evolve.NewRunner[core.Coord, Status](Name, ev, initial, evolve.Fixpoint{})}, nil
}

// Layout returns the current generation.
func (s *Sim) Layout() *Layout { return s.Store().(*Layout) }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.Layout().Cols(), H: s.Layout().Rows()} }

// Cells exposes the current status values.
func (s *Sim) Cells() []uint8 { return s.Layout().Cells() }

func (s *Sim) String() string { return s.Layout().String() }

func init() {
	core.Register(Name, func(cfg map[string]string, input []string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := FromLines(input)
		if err != nil {
			return nil, err
		}
		sim, err := New(c, l)
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
