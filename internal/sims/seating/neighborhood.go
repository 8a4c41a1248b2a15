package seating

import (
	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// directions are the eight compass and diagonal steps as (row, col) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Adjacent counts occupied seats among the eight touching positions.
type Adjacent struct{}

// Count implements evolve.Neighborhood.
func (Adjacent) Count(snap evolve.Snapshot[core.Coord, Status], at core.Coord) int {
	row, col := at.At(0), at.At(1)
	n := 0
	for _, d := range directions {
		if s, ok := snap.At(core.C(row+d[0], col+d[1])); ok && s == Occupied {
			n++
		}
	}
	return n
}

// Visible counts, for each of the eight directions, whether the first seat
// seen across the floor is occupied. An empty seat blocks the view; so does the
// edge of the area.
type Visible struct{}

// Count implements evolve.Neighborhood.
func (Visible) Count(snap evolve.Snapshot[core.Coord, Status], at core.Coord) int {
	row, col := at.At(0), at.At(1)
	n := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
	ray:
		for {
			s, ok := snap.At(core.C(r, c))
			if !ok {
				break
			}
			switch s {
			case Occupied:
				n++
				break ray
			case Empty:
				break ray
			}
			r, c = r+d[0], c+d[1]
		}
	}
	return n
}

// Rule decides seat changes. An empty seat with no occupied neighbours gets
// taken; an occupied seat with at least Threshold occupied neighbours is left.
type Rule struct {
	Threshold int
}

// Next implements evolve.Rule.
func (r Rule) Next(cur Status, neighbors int) Status {
	switch {
	case cur == Empty && neighbors == 0:
		return Occupied
	case cur == Occupied && neighbors >= r.Threshold:
		return Empty
	}
	return cur
}
