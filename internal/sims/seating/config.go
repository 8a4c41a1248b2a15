package seating

import (
	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// Mode selects which neighbourhood decides seat changes.
type Mode string

const (
	// ModeAdjacent looks at the eight touching positions.
	ModeAdjacent Mode = "adjacent"
	// ModeVisible looks along the eight lines of sight.
	ModeVisible Mode = "visible"
)

// DefaultThreshold returns how many occupied neighbours make a person leave
// their seat under mode.
func DefaultThreshold(mode Mode) int {
	if mode == ModeVisible {
		return 5
	}
	return 4
}

// Neighborhood returns the neighbourhood model for mode.
func (m Mode) Neighborhood() (evolve.Neighborhood[core.Coord, Status], error) {
	switch m {
	case ModeAdjacent:
		return Adjacent{}, nil
	case ModeVisible:
		return Visible{}, nil
	}
	return nil, core.Configf("seating", "unknown mode %q", string(m))
}

// Config holds parameters for the seating simulation.
type Config struct {
	Mode      Mode
	Threshold int
	Workers   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Mode: ModeAdjacent, Threshold: DefaultThreshold(ModeAdjacent)}
}

// Rule returns the transition rule for c.
func (c Config) Rule() Rule { return Rule{Threshold: c.Threshold} }

// FromMap populates a Config from a string map. The threshold follows the mode
// unless set explicitly.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["mode"]; ok && v != "" {
		c.Mode = Mode(v)
		if _, err := c.Mode.Neighborhood(); err != nil {
			return c, err
		}
	}
	var err error
	if c.Threshold, err = core.ParseInt("seating", cfg, "threshold", DefaultThreshold(c.Mode), func(v int) bool { return v > 0 && v <= 8 }); err != nil {
		return c, err
	}
	if c.Workers, err = core.ParseInt("seating", cfg, "workers", 0, func(v int) bool { return v >= 0 }); err != nil {
		return c, err
	}
	return c, nil
}

// Parameters describes the resolved configuration.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Seating",
		Summary: "runs to a fixpoint; reports occupied seats",
		Params: []core.Parameter{
			core.StringParam("mode", "Neighbourhood", string(c.Mode), "adjacent or visible"),
			core.IntParam("threshold", "Leave threshold", c.Threshold, "occupied neighbours that empty a seat"),
			core.IntParam("workers", "Workers", c.Workers, "goroutines per generation, 0 = GOMAXPROCS"),
		},
	}}}
}
