// Package polyomino enumerates free polyominoes of a given size and turns
// one of them, picked uniformly at random, into a grid.Grid.
//
// What:
//
//   - Enumerator grows a live net one square at a time with a chain of
//     per-level cursors (depth-first backtracking). A growth step is
//     skipped when the grown shape is already known up to rotation or
//     reflection, so each free polyomino is explored from a single
//     orientation. Skipped growths are remembered in a child→parents
//     relation.
//   - Run drives the search to convergence: exhaustion of the search
//     (default) or the timed stall heuristic (two equal samples of the
//     recorded elapsed time).
//   - Materialize stamps a net into a fresh grid.
//   - Generate validates a request, enumerates, samples and materializes.
//
// Complexity:
//
//   - The number of free polyominoes grows roughly as 4^n; every step
//     runs up to 4·n symmetry searches over the bucket of the next size.
//     Sizes up to ~8 finish in well under a second.
//
// Concurrency:
//
//   - An Enumerator owns all of its search state and must not be shared.
//     Independent Enumerators (and Generate calls) may run in parallel.
//
// Errors:
//
//   - ErrInvalidSize: size < 1.
//   - ErrEmptyNet: Materialize was given no points.
//   - ErrNoShapes: the run converged without any shape of the target size.
//   - ErrDisconnected: a materialized shape is not 4-connected.
//   - ctx.Err(): the caller cancelled the run.
package polyomino
