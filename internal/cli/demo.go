package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrille"
	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/internal/textrender"
)

// sample is the mixed colour/glyph piece the demo moves around.
func sample() (*grid.Grid, error) {
	x := grid.Empty()
	return quadrille.CreateGridFrom([][]grid.Cell{
		{grid.MustColorHex("#00ffff"), grid.MustGlyph("👽"), x},
		{x, grid.MustGlyph("🤔"), grid.MustGlyph("🙈")},
		{x, grid.MustColorHex("#770811"), x},
		{grid.MustGlyph("g"), grid.MustGlyph("o"), grid.MustGlyph("l")},
	})
}

func newDemoCommand(e *env) *cobra.Command {
	var ansi bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through board composition step by step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), e, ansi)
		},
	}
	cmd.Flags().BoolVar(&ansi, "ansi", false, "paint colour cells with ANSI escapes")
	return cmd
}

func runDemo(out io.Writer, e *env, ansi bool) error {
	edge := e.cfg.Board.Edge
	show := func(title string, g *grid.Grid) error {
		if _, err := fmt.Fprintf(out, "== %s\n", title); err != nil {
			return err
		}
		return textrender.Render(out, g, edge, ansi)
	}

	board, err := quadrille.CreateBoard(e.cfg.Board.Rows, e.cfg.Board.Cols)
	if err != nil {
		return err
	}
	piece, err := sample()
	if err != nil {
		return err
	}
	if err = show("piece", piece); err != nil {
		return err
	}

	piece.Reflect()
	if err = show("reflected", piece); err != nil {
		return err
	}
	piece.Rotate()
	if err = show("rotated", piece); err != nil {
		return err
	}

	row, col := 2, 2
	board, ok, err := quadrille.Glue(board, piece, row, col, true)
	if err != nil {
		return err
	}
	if err = show(fmt.Sprintf("glued at (%d,%d): %t", row, col, ok), board); err != nil {
		return err
	}

	// One column over the pieces overlap.
	board, ok, err = quadrille.Glue(board, piece, row, col+1, true)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "== validated glue at (%d,%d): %t\n", row, col+1, ok); err != nil {
		return err
	}
	board, ok, err = quadrille.Glue(board, piece, row, col+1, false)
	if err != nil {
		return err
	}
	if err = show(fmt.Sprintf("forced glue at (%d,%d): %t", row, col+1, ok), board); err != nil {
		return err
	}

	_, _, err = quadrille.Glue(board, piece, board.Height()-1, 0, true)
	if err == nil {
		return fmt.Errorf("expected out of bounds glue to fail")
	}
	e.logger.Info("glue out of bounds", "err", err)
	_, err = fmt.Fprintf(out, "== %v\n", err)
	return err
}
