package polyomino

import (
	"context"
	"fmt"

	"github.com/katalvlaran/quadrille/grid"
)

// Generate returns one free polyomino of the given size, chosen uniformly
// among the distinct shapes the run found, stamped with filler.
//
// Steps:
//  1. Reject size < 1 with ErrInvalidSize before any state exists.
//  2. Run an Enumerator to convergence (see Options.Convergence).
//  3. Pick one canonical net uniformly at random (Options.Seed).
//  4. Materialize it and check it is a single 4-connected region.
//
// The call blocks until convergence; use ctx to bound it.
func Generate(ctx context.Context, size int, filler grid.Cell, opts ...Option) (*grid.Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	e, err := NewEnumerator(size, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.Run(ctx); err != nil {
		return nil, err
	}

	shapes := e.Shapes()
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: size %d after %d steps", ErrNoShapes, size, e.Steps())
	}
	rng := rngFromSeed(e.opts.Seed)
	pick := rng.Intn(len(shapes))

	g, err := Materialize(shapes[pick], filler)
	if err != nil {
		return nil, err
	}
	if !g.Connected() {
		return nil, fmt.Errorf("%w: %v", ErrDisconnected, shapes[pick])
	}
	e.log.Info("polyomino generated",
		"pick", pick,
		"of", len(shapes),
		"rows", g.Height(),
		"cols", g.Width(),
	)

	return g, nil
}
