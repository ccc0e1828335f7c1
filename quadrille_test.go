package quadrille_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrille"
	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/polyomino"
)

// TestScenario_BlockTwice: a 2×2 block on a 3×3 board, then again on top.
func TestScenario_BlockTwice(t *testing.T) {
	board, err := quadrille.CreateBoard(3, 3)
	require.NoError(t, err)
	c := grid.Color(9, 9, 9)
	block, err := quadrille.CreateGridFrom([][]grid.Cell{{c, c}, {c, c}})
	require.NoError(t, err)

	res, err := quadrille.Overlay(board, block, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, res.Collisions)
	assert.Equal(t, 4, res.Grid.Occupied())

	again, err := quadrille.Overlay(res.Grid, block, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Collisions)
	assert.Zero(t, board.Occupied(), "board is never mutated")
}

// TestGlue covers both commit policies.
func TestGlue(t *testing.T) {
	board, err := quadrille.CreateBoard(4, 4)
	require.NoError(t, err)
	piece, err := quadrille.GeneratePolyomino(context.Background(), 3, grid.MustGlyph("👾"), polyomino.WithSeed(3))
	require.NoError(t, err)

	board, ok, err := quadrille.Glue(board, piece, 0, 0, true)
	require.NoError(t, err)
	require.True(t, ok)
	before := board.Clone()

	// validated glue on top is refused and leaves the board alone
	same, ok, err := quadrille.Glue(board, piece, 0, 0, true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, same.Equal(before))

	// unvalidated glue overwrites
	over, ok, err := quadrille.Glue(board, piece, 0, 0, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, over.Occupied())

	// out of bounds in either mode keeps the board
	for _, validate := range []bool{true, false} {
		kept, ok, err := quadrille.Glue(board, piece, 4, 0, validate)
		require.ErrorIs(t, err, grid.ErrOutOfBounds)
		assert.False(t, ok)
		assert.True(t, kept.Equal(before))
	}
}

func TestGeneratePolyomino_InvalidSize(t *testing.T) {
	_, err := quadrille.GeneratePolyomino(context.Background(), 0, grid.Empty())
	assert.ErrorIs(t, err, polyomino.ErrInvalidSize)
}
