package grid

// Add overlays overlay onto a clone of g with its top-left corner at
// (row, col) and returns the clone together with the number of
// collisions: occupied cells of g that an occupied overlay cell
// overwrote. g itself is never modified.
//
// Behavior:
//  1. Clone g.
//  2. For each overlay row i, the destination row row+i must exist,
//     else *OutOfBoundsError{TooFarDown} (TooFarUp for negative rows).
//  3. For each overlay cell j, the destination column col+j must exist,
//     else *OutOfBoundsError{TooFarRight} (TooFarLeft for negative cols).
//     Bounds are checked for empty overlay cells too.
//  4. Empty overlay cells are skipped; occupied ones overwrite the
//     destination (last write wins), counting a collision if it was occupied.
//
// Callers decide whether to commit, typically only when collisions == 0.
// Complexity: O(W×H + w×h).
func (g *Grid) Add(overlay *Grid, row, col int) (*Grid, int, error) {
	result := g.Clone()
	var hits int
	for i, src := range overlay.rows {
		r := row + i
		if r < 0 {
			return nil, 0, &OutOfBoundsError{Direction: TooFarUp, Row: r, Col: col}
		}
		if r >= len(result.rows) {
			return nil, 0, &OutOfBoundsError{Direction: TooFarDown, Row: r, Col: col}
		}
		dst := result.rows[r]
		for j, v := range src {
			c := col + j
			if c < 0 {
				return nil, 0, &OutOfBoundsError{Direction: TooFarLeft, Row: r, Col: c}
			}
			if c >= len(dst) {
				return nil, 0, &OutOfBoundsError{Direction: TooFarRight, Row: r, Col: c}
			}
			if v.IsEmpty() {
				continue
			}
			if !dst[c].IsEmpty() {
				hits++
			}
			dst[c] = v
		}
	}

	return result, hits, nil
}
