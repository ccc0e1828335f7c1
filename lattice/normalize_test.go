package lattice_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/quadrille/lattice"
)

// Fixed tetrominoes used across tests (Y grows upwards).
var (
	tetL = lattice.Net{{0, 0}, {0, 1}, {0, 2}, {1, 0}}
	tetT = lattice.Net{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
	tetS = lattice.Net{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	tetO = lattice.Net{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	tetI = lattice.Net{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
)

// TestNormalize_Order checks the X-ascending, Y-descending order and the
// translation of the first point to the origin.
func TestNormalize_Order(t *testing.T) {
	in := lattice.Net{{3, 5}, {2, 5}, {2, 6}, {3, 4}}
	want := lattice.Net{{0, 0}, {0, -1}, {1, -1}, {1, -2}}
	if diff := cmp.Diff(want, lattice.Normalize(in)); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DoesNotMutate(t *testing.T) {
	in := lattice.Net{{3, 5}, {2, 5}}
	orig := in.Clone()
	_ = lattice.Normalize(in)
	assert.Equal(t, orig, in)
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, n := range []lattice.Net{tetL, tetT, tetS, tetO, tetI, {{7, -3}}} {
		once := lattice.Normalize(n)
		twice := lattice.Normalize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Normalize not idempotent for %v (-once +twice):\n%s", n, diff)
		}
	}
}

// TestNormalize_TranslationInvariant shifts each net by several vectors.
func TestNormalize_TranslationInvariant(t *testing.T) {
	shifts := [][2]int{{0, 0}, {1, 0}, {-4, 9}, {100, -100}}
	for _, n := range []lattice.Net{tetL, tetT, tetS} {
		want := lattice.Normalize(n)
		for _, d := range shifts {
			got := lattice.Normalize(n.Translate(d[0], d[1]))
			assert.True(t, lattice.Equal(want, got), "net %v shifted by %v", n, d)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, lattice.Normalize(nil))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, lattice.Compare(lattice.Point{0, 9}, lattice.Point{1, 0}))
	assert.Equal(t, -1, lattice.Compare(lattice.Point{0, 1}, lattice.Point{0, 0}))
	assert.Equal(t, 1, lattice.Compare(lattice.Point{0, 0}, lattice.Point{0, 1}))
	assert.Equal(t, 0, lattice.Compare(lattice.Point{2, 2}, lattice.Point{2, 2}))
	assert.True(t, lattice.Less(lattice.Point{0, 1}, lattice.Point{0, 0}))
}

func TestNet_Key(t *testing.T) {
	assert.Equal(t, "0,0;1,-2", lattice.Net{{0, 0}, {1, -2}}.Key())
	assert.Equal(t, "", lattice.Net{}.Key())
}
