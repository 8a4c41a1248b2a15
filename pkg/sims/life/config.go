package life

import "cellsim/internal/core"

// Config holds parameters for the lattice simulation.
type Config struct {
	Dims        int
	Generations int
	Workers     int
}

// DefaultConfig returns the default configuration: a 3D lattice run for six
// generations.
func DefaultConfig() Config {
	return Config{Dims: 3, Generations: 6}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var err error
	if c.Dims, err = core.ParseInt("life", cfg, "dims", c.Dims, func(v int) bool { return v >= 2 }); err != nil {
		return c, err
	}
	if c.Generations, err = core.ParseInt("life", cfg, "generations", c.Generations, func(v int) bool { return v >= 0 }); err != nil {
		return c, err
	}
	if c.Workers, err = core.ParseInt("life", cfg, "workers", 0, func(v int) bool { return v >= 0 }); err != nil {
		return c, err
	}
	return c, nil
}

// Parameters describes the resolved configuration.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Cubes",
		Summary: "runs a fixed number of generations; reports active points",
		Params: []core.Parameter{
			core.IntParam("dims", "Dimensions", c.Dims, "lattice dimensionality, at least 2"),
			core.IntParam("generations", "Generations", c.Generations, "generations to run"),
			core.IntParam("workers", "Workers", c.Workers, "goroutines per generation, 0 = GOMAXPROCS"),
		},
	}}}
}
