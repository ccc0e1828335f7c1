package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadrille/grid"
	"github.com/katalvlaran/quadrille/internal/textrender"
	"github.com/katalvlaran/quadrille/polyomino"
)

func newGenerateCommand(e *env) *cobra.Command {
	var (
		size   int
		filler string
		seed   int64
		mode   string
		count  int
		ansi   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random free polyominoes",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := e.cfg.Generate
			if cmd.Flags().Changed("size") {
				g.Size = size
			}
			if cmd.Flags().Changed("filler") {
				g.Filler = filler
			}
			if cmd.Flags().Changed("seed") {
				g.Seed = seed
			}
			if cmd.Flags().Changed("mode") {
				if _, ok := polyomino.ParseConvergence(mode); !ok {
					return fmt.Errorf("unknown mode %q (want exhaustion or stall)", mode)
				}
				g.Mode = mode
			}
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			fill, err := parseFiller(g.Filler)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if d := g.TimeoutDuration(); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			pieces := make([]*grid.Grid, count)
			grp, gctx := errgroup.WithContext(ctx)
			for i := 0; i < count; i++ {
				opts := append(g.Options(),
					polyomino.WithSeed(polyomino.DeriveSeed(g.Seed, uint64(i))),
					polyomino.WithLogger(e.logger),
				)
				grp.Go(func() error {
					p, err := polyomino.Generate(gctx, g.Size, fill, opts...)
					if err != nil {
						return fmt.Errorf("piece %d: %w", i, err)
					}
					pieces[i] = p
					return nil
				})
			}
			if err = grp.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range pieces {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err = textrender.Render(out, p, e.cfg.Board.Edge, ansi); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "squares per piece (default from config: 6)")
	cmd.Flags().StringVarP(&filler, "filler", "f", "", `glyph or "#rrggbb" colour stamped into the piece`)
	cmd.Flags().Int64Var(&seed, "seed", 0, "sampling seed (0 = clock)")
	cmd.Flags().StringVar(&mode, "mode", "", "convergence: exhaustion or stall")
	cmd.Flags().IntVar(&count, "count", 1, "number of independent pieces")
	cmd.Flags().BoolVar(&ansi, "ansi", false, "paint colour cells with ANSI escapes")
	return cmd
}
