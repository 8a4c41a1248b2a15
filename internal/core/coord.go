package core

import (
	"encoding/binary"
	"strconv"
	"strings"
)

const axisBytes = 8

// Coord is an immutable point in D-dimensional integer space. Values are
// comparable and can be used directly as map keys; equality is by value.
type Coord struct {
	key string
}

// C builds a Coord from its components.
func C(vals ...int) Coord {
	buf := make([]byte, len(vals)*axisBytes)
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[i*axisBytes:], uint64(int64(v)))
	}
	return Coord{key: string(buf)}
}

// Dim returns the number of axes.
func (c Coord) Dim() int { return len(c.key) / axisBytes }

// At returns the component on axis i.
func (c Coord) At(i int) int {
	var u uint64
	base := i * axisBytes
	for j := 0; j < axisBytes; j++ {
		u = u<<8 | uint64(c.key[base+j])
	}
	return int(int64(u))
}

// Values returns a fresh slice holding every component.
func (c Coord) Values() []int {
	out := make([]int, c.Dim())
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// Add returns the component-wise sum of c and o. Both must share a dimension.
func (c Coord) Add(o Coord) Coord {
	d := c.Dim()
	if o.Dim() != d {
		panic("core: Coord.Add dimension mismatch " + strconv.Itoa(d) + " != " + strconv.Itoa(o.Dim()))
	}
	buf := make([]byte, len(c.key))
	for i := 0; i < d; i++ {
		binary.BigEndian.PutUint64(buf[i*axisBytes:], uint64(int64(c.At(i)+o.At(i))))
	}
	return Coord{key: string(buf)}
}

// IsZero reports whether every component is zero.
func (c Coord) IsZero() bool {
	for i := 0; i < len(c.key); i++ {
		if c.key[i] != 0 {
			return false
		}
	}
	return true
}

// Compare orders coordinates by dimension, then lexicographically by axis.
func (c Coord) Compare(o Coord) int {
	if c.Dim() != o.Dim() {
		if c.Dim() < o.Dim() {
			return -1
		}
		return 1
	}
	for i := 0; i < c.Dim(); i++ {
		a, b := c.At(i), o.At(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < c.Dim(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c.At(i)))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Offsets returns every vector in {-1,0,1}^d except the zero vector, i.e. the
// 3^d-1 Moore neighbourhood offsets. The axes are expanded one at a time so any
// dimensionality is handled by the same loop.
func Offsets(d int) []Coord {
	if d <= 0 {
		return nil
	}
	vecs := [][]int{{}}
	for axis := 0; axis < d; axis++ {
		next := make([][]int, 0, len(vecs)*3)
		for _, v := range vecs {
			for delta := -1; delta <= 1; delta++ {
				grown := make([]int, len(v), len(v)+1)
				copy(grown, v)
				next = append(next, append(grown, delta))
			}
		}
		vecs = next
	}
	out := make([]Coord, 0, len(vecs)-1)
	for _, v := range vecs {
		c := C(v...)
		if c.IsZero() {
			continue
		}
		out = append(out, c)
	}
	return out
}
