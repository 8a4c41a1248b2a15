// Package life implements Conway's Game of Life on an unbounded lattice of any
// dimensionality. Only active cells are stored.
package life

import (
	"slices"

	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// State is the status of a single lattice point.
type State uint8

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Space is one immutable generation: the set of active points of a fixed
// dimension. Points not in the set are inactive.
type Space struct {
	dim     int
	active  map[core.Coord]struct{}
	offsets []core.Coord
}

var _ evolve.Store[core.Coord, State] = (*Space)(nil)

// NewSpace returns a space of dimension dim holding coords. Duplicates collapse
// into one point; a coordinate of another dimension is a ConfigError.
func NewSpace(dim int, coords ...core.Coord) (*Space, error) {
	if dim <= 0 {
		return nil, core.Configf("life.NewSpace", "dimension %d must be positive", dim)
	}
	s := &Space{dim: dim, active: make(map[core.Coord]struct{}, len(coords)), offsets: core.Offsets(dim)}
	for _, c := range coords {
		if c.Dim() != dim {
			return nil, core.Configf("life.NewSpace", "coordinate %v has dimension %d, want %d", c, c.Dim(), dim)
		}
		s.active[c] = struct{}{}
	}
	return s, nil
}

// Dim returns the dimensionality of the space.
func (s *Space) Dim() int { return s.dim }

// Contains reports whether c is active.
func (s *Space) Contains(c core.Coord) bool {
	_, ok := s.active[c]
	return ok
}

// At implements evolve.Snapshot. Every point of the right dimension exists.
func (s *Space) At(c core.Coord) (State, bool) {
	if c.Dim() != s.dim {
		return Inactive, false
	}
	if s.Contains(c) {
		return Active, true
	}
	return Inactive, true
}

// Candidates returns every active point and every point adjacent to one, in
// sorted order. Nothing else can become active in the next generation.
func (s *Space) Candidates() []core.Coord {
	seen := make(map[core.Coord]struct{}, len(s.active)*(len(s.offsets)+1))
	for c := range s.active {
		seen[c] = struct{}{}
		for _, o := range s.offsets {
			seen[c.Add(o)] = struct{}{}
		}
	}
	out := make([]core.Coord, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.SortFunc(out, core.Coord.Compare)
	return out
}

// Apply builds the next generation from the evaluated candidates.
func (s *Space) Apply(keys []core.Coord, states []State) evolve.Store[core.Coord, State] {
	next := &Space{dim: s.dim, active: make(map[core.Coord]struct{}, len(s.active)), offsets: s.offsets}
	for i, k := range keys {
		if states[i] == Active {
			next.active[k] = struct{}{}
		}
	}
	return next
}

// Count returns the number of active points.
func (s *Space) Count() int { return len(s.active) }

// Active returns the active points in sorted order.
func (s *Space) Active() []core.Coord {
	out := make([]core.Coord, 0, len(s.active))
	for c := range s.active {
		out = append(out, c)
	}
	slices.SortFunc(out, core.Coord.Compare)
	return out
}

// Bounds returns the inclusive per-axis minimum and maximum over all active
// points. ok is false for an empty space.
func (s *Space) Bounds() (lo, hi []int, ok bool) {
	for c := range s.active {
		if !ok {
			lo, hi, ok = c.Values(), c.Values(), true
			continue
		}
		for i := 0; i < s.dim; i++ {
			v := c.At(i)
			lo[i] = min(lo[i], v)
			hi[i] = max(hi[i], v)
		}
	}
	return lo, hi, ok
}
