package seating

import (
	"io"
	"unicode/utf8"

	"cellsim/internal/core"
	pcore "cellsim/pkg/core"
)

// Parse reads a layout from r. See FromLines.
func Parse(r io.Reader) (*Layout, error) {
	lines, err := core.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return FromLines(lines)
}

// FromLines builds a layout from rows of '#' (occupied), 'L' (empty) and '.'
// (floor). Every row must have the same length.
func FromLines(lines []string) (*Layout, error) {
	lines = core.TrimBlank(lines)
	if len(lines) == 0 {
		return nil, core.Configf("seating.FromLines", "empty input")
	}
	cols := utf8.RuneCountInString(lines[0])
	if cols == 0 {
		return nil, core.Configf("seating.FromLines", "row 0 is empty")
	}
	l := newLayout(len(lines), cols)
	for r, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, core.Configf("seating.FromLines", "row %d has %d cells, want %d", r, n, cols)
		}
		c := 0
		for _, ch := range line {
			var s Status
			switch ch {
			case '#':
				s = Occupied
			case 'L':
				s = Empty
			case '.':
				s = Floor
			default:
				return nil, core.Configf("seating.FromLines", "row %d col %d: unknown cell %q", r, c, ch)
			}
			l.grid.Set(c, r, uint8(s))
			c++
		}
	}
	return l, nil
}

// Generate builds a random rows×cols layout. Each position is floor with
// probability floor; seats are occupied with probability occupied.
func Generate(rng *pcore.RNG, rows, cols int, floor, occupied float64) (*Layout, error) {
	if rows <= 0 || cols <= 0 {
		return nil, core.Configf("seating.Generate", "size %dx%d must be positive", rows, cols)
	}
	l := newLayout(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := Empty
			switch {
			case rng.Chance(floor):
				s = Floor
			case rng.Chance(occupied):
				s = Occupied
			}
			l.grid.Set(c, r, uint8(s))
		}
	}
	return l, nil
}
