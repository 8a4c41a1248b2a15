// Package seating simulates a bounded seating area in which people take and
// leave seats depending on how crowded their surroundings are. The area is run
// until nobody moves.
package seating

import (
	"strings"

	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

// Status is the content of one position in the seating area.
type Status uint8

const (
	// Floor can never be occupied and never counts as a neighbour.
	Floor Status = iota
	// Empty is a free seat.
	Empty
	// Occupied is a taken seat.
	Occupied
)

// Rune returns the input/rendering character for s.
func (s Status) Rune() rune {
	switch s {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	default:
		return '.'
	}
}

func (s Status) String() string {
	switch s {
	case Floor:
		return "floor"
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return "unknown"
}

// Layout is one immutable generation of the seating area. Positions are
// addressed by two-dimensional Coords (row, col).
type Layout struct {
	grid *core.ByteGrid
	keys []core.Coord
}

var _ evolve.Store[core.Coord, Status] = (*Layout)(nil)

func newLayout(rows, cols int) *Layout {
	keys := make([]core.Coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			keys = append(keys, core.C(r, c))
		}
	}
	return &Layout{grid: core.NewByteGrid(cols, rows), keys: keys}
}

// Rows returns the number of rows.
func (l *Layout) Rows() int { return l.grid.H }

// Cols returns the number of columns.
func (l *Layout) Cols() int { return l.grid.W }

// Status returns the content at (row, col); ok is false outside the area.
func (l *Layout) Status(row, col int) (Status, bool) {
	v, ok := l.grid.At(col, row)
	return Status(v), ok
}

// At implements evolve.Snapshot.
func (l *Layout) At(c core.Coord) (Status, bool) {
	if c.Dim() != 2 {
		return Floor, false
	}
	return l.Status(c.At(0), c.At(1))
}

// Candidates returns every position in row-major order.
func (l *Layout) Candidates() []core.Coord { return l.keys }

// Apply builds the next generation.
func (l *Layout) Apply(keys []core.Coord, states []Status) evolve.Store[core.Coord, Status] {
	next := &Layout{grid: core.NewByteGrid(l.grid.W, l.grid.H), keys: l.keys}
	for i, k := range keys {
		next.grid.Set(k.At(1), k.At(0), uint8(states[i]))
	}
	return next
}

// Count returns the number of occupied seats.
func (l *Layout) Count() int { return l.grid.Count(uint8(Occupied)) }

// Cells exposes the row-major status values. Callers must not modify them.
func (l *Layout) Cells() []uint8 { return l.grid.Cells() }

// Equal reports whether both layouts hold identical contents.
func (l *Layout) Equal(o *Layout) bool {
	if l.grid.W != o.grid.W || l.grid.H != o.grid.H {
		return false
	}
	a, b := l.grid.Cells(), o.grid.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (l *Layout) String() string {
	var sb strings.Builder
	sb.Grow(l.grid.H * (l.grid.W + 1))
	for r := 0; r < l.grid.H; r++ {
		for c := 0; c < l.grid.W; c++ {
			s, _ := l.Status(r, c)
			sb.WriteRune(s.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
