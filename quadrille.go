package quadrille

import (
	"context"

	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/polyomino"
)

// OverlayResult is the outcome of Overlay: the composed grid and how many
// occupied board cells the shape overwrote.
type OverlayResult struct {
	Grid       *grid.Grid
	Collisions int
}

// CreateBoard returns an empty board of rows×cols cells.
func CreateBoard(rows, cols int) (*grid.Grid, error) {
	return grid.New(rows, cols)
}

// CreateGridFrom wraps a literal rectangular 2-D slice of cells.
func CreateGridFrom(rows [][]grid.Cell) (*grid.Grid, error) {
	return grid.From2D(rows)
}

// Overlay composes shape onto a copy of board at (row, col). The board is
// never modified; see grid.Grid.Add.
func Overlay(board, shape *grid.Grid, row, col int) (OverlayResult, error) {
	g, hits, err := board.Add(shape, row, col)
	if err != nil {
		return OverlayResult{}, err
	}
	return OverlayResult{Grid: g, Collisions: hits}, nil
}

// Glue applies the usual commit policy for dropping a piece on a board and
// returns the board to keep using, plus whether the piece was committed.
//
//   - validate == true: the piece is committed only when it fits and hits
//     nothing; otherwise the original board is returned unchanged.
//   - validate == false: the piece is committed whenever it fits,
//     overwriting what it covers.
//
// Bounds errors are returned in both modes, alongside the untouched board.
func Glue(board, shape *grid.Grid, row, col int, validate bool) (*grid.Grid, bool, error) {
	res, err := Overlay(board, shape, row, col)
	if err != nil {
		return board, false, err
	}
	if validate && res.Collisions != 0 {
		return board, false, nil
	}
	return res.Grid, true, nil
}

// GeneratePolyomino returns a random free polyomino of the given size
// stamped with filler. It blocks until the enumeration converges or ctx
// is done. See polyomino.Generate.
func GeneratePolyomino(ctx context.Context, size int, filler grid.Cell, opts ...polyomino.Option) (*grid.Grid, error) {
	return polyomino.Generate(ctx, size, filler, opts...)
}
