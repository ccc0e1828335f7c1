package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrille"
	"github.com/katalvlaran/quadrille/internal/tui"
	"github.com/katalvlaran/quadrille/polyomino"
)

func newViewCommand(e *env) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Place a random piece on a board interactively",
		Long: `view generates a random polyomino and lets you place it on a board.

  ←/→      reflect / rotate
  a d w s  move
  g        glue, overwriting
  v        glue only without collisions
  q, Esc   quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := e.cfg.Generate
			if cmd.Flags().Changed("size") {
				g.Size = size
			}
			fill, err := parseFiller(g.Filler)
			if err != nil {
				return err
			}
			opts := append(g.Options(), polyomino.WithLogger(e.logger))
			piece, err := quadrille.GeneratePolyomino(cmd.Context(), g.Size, fill, opts...)
			if err != nil {
				return err
			}
			board, err := quadrille.CreateBoard(e.cfg.Board.Rows, e.cfg.Board.Cols)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err = screen.Init(); err != nil {
				return fmt.Errorf("failed to initialise terminal: %w", err)
			}
			defer screen.Fini()

			s := &tui.Session{Board: board, Piece: piece, Edge: e.cfg.Board.Edge, Log: e.logger}
			tui.Run(screen, s)
			e.logger.Info("view closed", "occupied", s.Board.Occupied())
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "squares per piece (default from config: 6)")
	return cmd
}
