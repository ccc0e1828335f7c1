package lattice

import "slices"

// Compare orders points by X ascending, then Y descending.
// It returns -1, 0 or +1 in the style of cmp.Compare.
func Compare(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return 1
	case p.Y > q.Y:
		return -1
	}
	return 0
}

// Less reports whether p sorts before q under Compare.
func Less(p, q Point) bool { return Compare(p, q) < 0 }

// Normalize returns the canonical form of n: a sorted copy translated so
// its first point is (0,0). n is not modified; an empty net yields an
// empty net.
// Complexity: O(k log k).
func Normalize(n Net) Net {
	out := n.Clone()
	if len(out) == 0 {
		return out
	}
	slices.SortFunc(out, Compare)
	ox, oy := out[0].X, out[0].Y
	for i := range out {
		out[i].X -= ox
		out[i].Y -= oy
	}
	return out
}
