package lattice

import (
	"strconv"
	"strings"
)

// Point is a unit cell offset on the integer lattice.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Net is an ordered sequence of points describing one fixed polyomino.
// Order matters while a net is being grown; equality between shapes is
// decided on canonical forms.
type Net []Point

// Clone returns an independent copy of n.
func (n Net) Clone() Net {
	if n == nil {
		return nil
	}
	out := make(Net, len(n))
	copy(out, n)
	return out
}

// Contains reports whether p is one of the points of n.
func (n Net) Contains(p Point) bool {
	for _, q := range n {
		if q == p {
			return true
		}
	}
	return false
}

// Translate returns a copy of n shifted by (dx, dy).
func (n Net) Translate(dx, dy int) Net {
	out := make(Net, len(n))
	for i, p := range n {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// Key serialises n as "x,y;x,y;…", a stable identity for map keys.
func (n Net) Key() string {
	var sb strings.Builder
	for i, p := range n {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
	return sb.String()
}

// Equal reports whether a and b hold the same points in the same order.
func Equal(a, b Net) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
