package lattice

import "sort"

// Bucket groups canonical nets by size (point count). Nets are stored as
// given; callers insert canonical forms that are not yet equivalent to a
// stored net, keeping every size free of duplicates under symmetry.
type Bucket struct {
	nets map[int][]Net
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{nets: make(map[int][]Net)}
}

// Add stores n under its size.
func (b *Bucket) Add(n Net) {
	b.nets[len(n)] = append(b.nets[len(n)], n)
}

// Insert canonicalises n and stores it unless an equivalent net is
// already present. It returns the stored net and whether it was new.
func (b *Bucket) Insert(n Net) (Net, bool) {
	if match, ok := FindEquivalent(n, b); ok {
		return match, false
	}
	c := Normalize(n)
	b.Add(c)
	return c, true
}

// Contains reports whether an equivalent of n is stored.
func (b *Bucket) Contains(n Net) bool {
	_, ok := FindEquivalent(n, b)
	return ok
}

// Count returns how many nets of the given size are stored.
func (b *Bucket) Count(size int) int { return len(b.nets[size]) }

// Nets returns copies of the stored nets of the given size, in insertion order.
func (b *Bucket) Nets(size int) []Net {
	stored := b.nets[size]
	out := make([]Net, len(stored))
	for i, n := range stored {
		out[i] = n.Clone()
	}
	return out
}

// Sizes lists the sizes that hold at least one net, ascending.
func (b *Bucket) Sizes() []int {
	sizes := make([]int, 0, len(b.nets))
	for k, v := range b.nets {
		if len(v) > 0 {
			sizes = append(sizes, k)
		}
	}
	sort.Ints(sizes)
	return sizes
}
