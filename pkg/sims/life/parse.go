package life

import (
	"io"

	"cellsim/internal/core"
)

// Parse reads a seed pattern from r. See FromLines.
func Parse(r io.Reader, dim int) (*Space, error) {
	lines, err := core.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return FromLines(lines, dim)
}

// FromLines places an active point at (row, col, 0, ..., 0) for every '#' in
// lines. Any other character is inactive.
func FromLines(lines []string, dim int) (*Space, error) {
	if dim < 2 {
		return nil, core.Configf("life.FromLines", "dimension %d cannot hold a 2D seed", dim)
	}
	lines = core.TrimBlank(lines)
	if len(lines) == 0 {
		return nil, core.Configf("life.FromLines", "empty input")
	}
	var coords []core.Coord
	vals := make([]int, dim)
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			if ch == '#' {
				vals[0], vals[1] = row, col
				coords = append(coords, core.C(vals...))
			}
			col++
		}
	}
	return NewSpace(dim, coords...)
}
