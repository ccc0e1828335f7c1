package lattice

// swap reflects every point across the diagonal: (x,y) → (y,x).
func swap(n Net) {
	for i, p := range n {
		n[i] = Point{X: p.Y, Y: p.X}
	}
}

// quarter rotates every point a quarter turn: (x,y) → (−y,x).
func quarter(n Net) {
	for i, p := range n {
		n[i] = Point{X: -p.Y, Y: p.X}
	}
}

// walk visits the canonical forms of the 8 dihedral images of n, in the
// order: reflect, then four quarter turns; reflect back, then four more.
// It stops early when visit returns false.
func walk(n Net, visit func(Net) bool) {
	nn := Normalize(n)
	for j := 0; j < 2; j++ {
		swap(nn)
		for k := 0; k < 4; k++ {
			quarter(nn)
			if !visit(Normalize(nn)) {
				return
			}
		}
	}
}

// Transforms returns the canonical forms of the 8 images of n under the
// symmetry group of the square. Symmetric shapes repeat entries.
func Transforms(n Net) [8]Net {
	var out [8]Net
	var i int
	walk(n, func(t Net) bool {
		out[i] = t
		i++
		return true
	})
	return out
}

// FindEquivalent looks for a net in b of the same size as n that equals n
// up to rotation and reflection, returning the stored canonical net.
// Returns false when b holds nothing of that size or no image matches.
func FindEquivalent(n Net, b *Bucket) (Net, bool) {
	stored := b.nets[len(n)]
	if len(stored) == 0 {
		return nil, false
	}
	var match Net
	walk(n, func(t Net) bool {
		for _, s := range stored {
			if Equal(t, s) {
				match = s
				return false
			}
		}
		return true
	})
	return match, match != nil
}
