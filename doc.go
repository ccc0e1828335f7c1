// Package quadrille is a square-grid toolkit for tile and block games:
// boards you can drop pieces on, and a generator of random polyomino
// pieces.
//
// 🚀 What is quadrille?
//
//	In geometry the square tiling of the plane is also called a quadrille
//	(John Horton Conway's name for it). This module brings together:
//		• grid/      — the Grid container: cells, clear, reflect, rotate,
//		               clone, overlay with collision counting
//		• lattice/   — nets of lattice points, canonical forms and the
//		               8-fold symmetry search
//		• polyomino/ — backtracking enumeration of free polyominoes and
//		               generation of one random piece as a Grid
//
// ✨ Why choose quadrille?
//
//   - Small API – boards, pieces and one overlay call
//   - Exact – overlays report every collision and every bounds violation
//   - Deterministic when asked – seeded sampling, exhaustive search
//   - Renderer-agnostic – cells are visited row-major; you draw them
//
// Quick ASCII example (an L tromino dropped on a 3×3 board):
//
//	X X ·
//	X · ·
//	· · ·
//
// This package re-exports the calls a host application needs:
// CreateBoard, CreateGridFrom, Overlay, Glue and GeneratePolyomino.
//
//	go get github.com/katalvlaran/quadrille
package quadrille
