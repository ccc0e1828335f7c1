// Package grid implements the quadrille: a rectangular 2-D container of
// cells that sub-grids can be composed into.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell; Cell is a closed variant
//     (Empty, Color, Glyph).
//   - In-place mutators: Clear, Reflect, Rotate, SetCell, SetCells.
//   - Add overlays one grid onto a clone of another at a (row, col)
//     offset and counts the occupied cells it overwrote ("collisions").
//   - Components finds 4-connected regions of occupied cells.
//   - Each and Draw walk the cells row-major for an external renderer.
//
// Why:
//
//   - Board games: drop a piece on a board, accept only if nothing was hit.
//   - Sprite sheets and glyph maps in terminal or canvas front-ends.
//
// Complexity:
//
//   - Clone, Clear, Rotate: O(W×H) time and memory.
//   - Reflect: O(H) time, O(1) memory.
//   - Add: O(W×H) for the clone plus O(w×h) for the overlay.
//   - Components: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrShape: rows have differing lengths, or negative dimensions.
//   - ErrIndex: a coordinate lies outside the grid.
//   - ErrOutOfBounds: an overlay does not fit; the concrete
//     *OutOfBoundsError names the direction ("too far down", "too far right").
//   - ErrInvalidColor, ErrInvalidGlyph: malformed cell literals.
package grid
