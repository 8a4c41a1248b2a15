package life

import (
	"fmt"
	"slices"
	"strings"

	"cellsim/internal/core"
)

var planeAxes = []string{"z", "w"}

func axisName(i int) string {
	if i-2 < len(planeAxes) {
		return planeAxes[i-2]
	}
	return fmt.Sprintf("a%d", i)
}

// String renders every populated plane. Axes beyond the first two select the
// plane and are printed as a header; rows and columns span the bounding box of
// the whole space.
func (s *Space) String() string {
	lo, hi, ok := s.Bounds()
	if !ok {
		return ""
	}
	if s.dim == 1 {
		var sb strings.Builder
		for x := lo[0]; x <= hi[0]; x++ {
			sb.WriteByte(cellByte(s.Contains(core.C(x))))
		}
		sb.WriteByte('\n')
		return sb.String()
	}

	planes := map[core.Coord]struct{}{}
	for c := range s.active {
		planes[core.C(c.Values()[2:]...)] = struct{}{}
	}
	keys := make([]core.Coord, 0, len(planes))
	for p := range planes {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, core.Coord.Compare)

	var sb strings.Builder
	vals := make([]int, s.dim)
	for i, p := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if s.dim > 2 {
			for j := 0; j < p.Dim(); j++ {
				if j > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%s=%d", axisName(j+2), p.At(j))
			}
			sb.WriteByte('\n')
		}
		copy(vals[2:], p.Values())
		for r := lo[0]; r <= hi[0]; r++ {
			for c := lo[1]; c <= hi[1]; c++ {
				vals[0], vals[1] = r, c
				sb.WriteByte(cellByte(s.Contains(core.C(vals...))))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellByte(active bool) byte {
	if active {
		return '#'
	}
	return '.'
}
