// File: grid/example_test.go
package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadrille/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Add
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Add drops an L-shaped piece on a 3×3 board twice.
// Scenario:
//
//   - First drop at (0,0) lands on empty cells: 0 collisions.
//   - Second drop at (1,0) overlaps one occupied cell: 1 collision.
//   - A drop at (2,0) overhangs the bottom edge.
func ExampleGrid_Add() {
	x := grid.MustGlyph("x")
	piece, _ := grid.From2D([][]grid.Cell{
		{x, grid.Empty()},
		{x, x},
	})
	board, _ := grid.New(3, 3)

	board, hits, _ := board.Add(piece, 0, 0)
	fmt.Println("collisions:", hits)
	_, hits, _ = board.Add(piece, 1, 0)
	fmt.Println("collisions:", hits)
	_, _, err := board.Add(piece, 2, 0)
	fmt.Println(errors.Is(err, grid.ErrOutOfBounds), err)
	fmt.Println(board)

	// Output:
	// collisions: 0
	// collisions: 1
	// true grid: too far down (row 3, col 0)
	// x · ·
	// x x ·
	// · · ·
}

////////////////////////////////////////////////////////////////////////////////
// Example: Rotate
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Rotate turns a 1×3 bar into a 3×1 bar.
func ExampleGrid_Rotate() {
	bar, _ := grid.From2D([][]grid.Cell{{
		grid.MustGlyph("a"), grid.MustGlyph("b"), grid.MustGlyph("c"),
	}})
	bar.Rotate()
	fmt.Printf("%d×%d\n%s\n", bar.Height(), bar.Width(), bar)

	// Output:
	// 3×1
	// a
	// b
	// c
}
