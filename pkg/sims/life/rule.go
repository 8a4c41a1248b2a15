package life

import (
	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// Neighbors counts active points among the 3^D-1 surrounding offsets.
type Neighbors struct {
	dim     int
	offsets []core.Coord
}

// NewNeighbors returns the full Moore neighbourhood for dimension dim.
func NewNeighbors(dim int) (Neighbors, error) {
	if dim <= 0 {
		return Neighbors{}, core.Configf("life.NewNeighbors", "dimension %d must be positive", dim)
	}
	return Neighbors{dim: dim, offsets: core.Offsets(dim)}, nil
}

// Size returns how many offsets are examined.
func (n Neighbors) Size() int { return len(n.offsets) }

// Count implements evolve.Neighborhood.
func (n Neighbors) Count(snap evolve.Snapshot[core.Coord, State], at core.Coord) int {
	count := 0
	for _, o := range n.offsets {
		if s, ok := snap.At(at.Add(o)); ok && s == Active {
			count++
		}
	}
	return count
}

// Rule is Conway's B3/S23 rule, identical in every dimension.
type Rule struct{}

// Next implements evolve.Rule.
func (Rule) Next(cur State, neighbors int) State {
	if neighbors == 3 || (cur == Active && neighbors == 2) {
		return Active
	}
	return Inactive
}
