package grid

// orthogonal holds the 4-neighbour offsets as (dRow, dCol): N, E, S, W.
var orthogonal = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Components finds all 4-connected regions of occupied cells, regardless
// of what they hold. Each region lists its coordinates in BFS order,
// starting from its top-most, left-most cell; regions are ordered by that
// starting cell in row-major order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Coord {
	h, w := g.Height(), g.Width()
	seen := make([]bool, w*h)
	var comps [][]Coord

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g.rows[r][c].IsEmpty() || seen[r*w+c] {
				continue
			}
			// BFS to collect the region
			queue := []Coord{{r, c}}
			seen[r*w+c] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range orthogonal {
					v := Coord{Row: u.Row + d.Row, Col: u.Col + d.Col}
					if !g.InBounds(v.Row, v.Col) || g.rows[v.Row][v.Col].IsEmpty() {
						continue
					}
					if !seen[v.Row*w+v.Col] {
						seen[v.Row*w+v.Col] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether the occupied cells form exactly one region.
func (g *Grid) Connected() bool {
	return len(g.Components()) == 1
}
