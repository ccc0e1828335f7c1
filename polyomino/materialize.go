package polyomino

import (
	"fmt"

	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/lattice"
)

// DefaultFiller is stamped when Materialize is given an empty filler.
var DefaultFiller = grid.Color(0x00, 0xff, 0xff)

// Materialize converts a net into the smallest grid holding it: point
// (x, y) lands on row y-minY, column x. X is not shifted; canonical nets
// always start at x == 0, and a net reaching negative x yields ErrIndex.
// Every occupied cell receives filler (DefaultFiller if filler is empty).
// net is not modified.
// Complexity: O(k + W×H).
func Materialize(net lattice.Net, filler grid.Cell) (*grid.Grid, error) {
	if len(net) == 0 {
		return nil, ErrEmptyNet
	}
	if filler.IsEmpty() {
		filler = DefaultFiller
	}
	var maxX, maxY, minY int
	for _, p := range net {
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	g, err := grid.New(maxY-minY+1, maxX+1)
	if err != nil {
		return nil, err
	}
	coords := make([]grid.Coord, len(net))
	for i, p := range net {
		coords[i] = grid.Coord{Row: p.Y - minY, Col: p.X}
	}
	if err = g.SetCells(coords, filler); err != nil {
		return nil, fmt.Errorf("polyomino: materialize %v: %w", net, err)
	}

	return g, nil
}
