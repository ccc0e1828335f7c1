package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrille/lattice"
)

// images builds the 8 raw (non-canonical) dihedral images of n by hand.
func images(n lattice.Net) []lattice.Net {
	maps := []func(p lattice.Point) lattice.Point{
		func(p lattice.Point) lattice.Point { return p },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: -p.Y, Y: p.X} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: -p.X, Y: -p.Y} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: p.Y, Y: -p.X} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: -p.X, Y: p.Y} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: p.X, Y: -p.Y} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: p.Y, Y: p.X} },
		func(p lattice.Point) lattice.Point { return lattice.Point{X: -p.Y, Y: -p.X} },
	}
	out := make([]lattice.Net, len(maps))
	for i, m := range maps {
		img := make(lattice.Net, len(n))
		for j, p := range n {
			img[j] = m(p).Add(lattice.Point{X: 5, Y: -3})
		}
		out[i] = img
	}
	return out
}

// TestFindEquivalent_Completeness: every image of a shape matches the
// shape's canonical form; unrelated shapes of the same size never do.
func TestFindEquivalent_Completeness(t *testing.T) {
	for _, shape := range []lattice.Net{tetL, tetT, tetS, tetO, tetI} {
		b := lattice.NewBucket()
		b.Add(lattice.Normalize(shape))

		for i, img := range images(shape) {
			got, ok := lattice.FindEquivalent(img, b)
			require.True(t, ok, "shape %v image %d", shape, i)
			assert.True(t, lattice.Equal(lattice.Normalize(shape), got))
		}
		for _, other := range []lattice.Net{tetL, tetT, tetS, tetO, tetI} {
			if lattice.Equal(other, shape) {
				continue
			}
			_, ok := lattice.FindEquivalent(other, b)
			assert.False(t, ok, "%v must not match %v", other, shape)
		}
	}
}

func TestFindEquivalent_WrongSize(t *testing.T) {
	b := lattice.NewBucket()
	b.Add(lattice.Normalize(tetL))
	_, ok := lattice.FindEquivalent(lattice.Net{{0, 0}, {0, 1}, {0, 2}}, b)
	assert.False(t, ok)
}

// TestTransforms_Distinct counts distinct canonical images:
// the L tetromino has 8, T has 4, S has 4, O has 1, I has 2.
func TestTransforms_Distinct(t *testing.T) {
	cases := []struct {
		name string
		net  lattice.Net
		want int
	}{
		{"L", tetL, 8},
		{"T", tetT, 4},
		{"S", tetS, 4},
		{"O", tetO, 1},
		{"I", tetI, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen := map[string]bool{}
			for _, img := range lattice.Transforms(tc.net) {
				seen[img.Key()] = true
			}
			assert.Len(t, seen, tc.want)
		})
	}
}

// TestBucket_Insert keeps one representative per free shape.
func TestBucket_Insert(t *testing.T) {
	b := lattice.NewBucket()
	_, isNew := b.Insert(tetS)
	assert.True(t, isNew)
	z := lattice.Net{{0, 1}, {1, 1}, {1, 0}, {2, 0}}
	stored, isNew := b.Insert(z)
	assert.False(t, isNew, "Z is the mirror image of S")
	assert.True(t, lattice.Equal(lattice.Normalize(tetS), stored))

	_, isNew = b.Insert(tetT)
	assert.True(t, isNew)
	assert.Equal(t, 2, b.Count(4))
	assert.Equal(t, []int{4}, b.Sizes())
	assert.True(t, b.Contains(z))

	nets := b.Nets(4)
	nets[0][0].X = 99
	assert.Equal(t, 0, b.Nets(4)[0][0].X, "Nets returns copies")
}
