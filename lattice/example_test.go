package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/quadrille/lattice"
)

// ExampleNormalize shows the canonical form of a translated L tromino.
func ExampleNormalize() {
	n := lattice.Net{{4, 4}, {5, 4}, {4, 5}}
	fmt.Println(lattice.Normalize(n))

	// Output:
	// [{0 0} {0 -1} {1 -1}]
}

// ExampleFindEquivalent finds a rotated tromino in a bucket.
func ExampleFindEquivalent() {
	b := lattice.NewBucket()
	b.Insert(lattice.Net{{0, 0}, {1, 0}, {0, 1}})

	rotated := lattice.Net{{0, 0}, {-1, 0}, {0, -1}}
	match, ok := lattice.FindEquivalent(rotated, b)
	fmt.Println(ok, match)

	// Output:
	// true [{0 0} {0 -1} {1 -1}]
}
