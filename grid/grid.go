package grid

import (
	"fmt"
	"strings"
)

// Coord addresses one cell: Row indexes rows (top to bottom), Col indexes
// cells within a row (left to right).
type Coord struct {
	Row, Col int
}

// Grid is a rectangular matrix of cells stored as rows.
// A Grid is not safe for concurrent mutation; Clone it before handing it
// to another goroutine.
type Grid struct {
	rows [][]Cell
}

// New returns an empty grid with the given number of rows and columns.
// Returns ErrShape if either dimension is negative.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrShape, rows, cols)
	}
	g := &Grid{rows: make([][]Cell, rows)}
	for i := range g.rows {
		g.rows[i] = make([]Cell, cols)
	}

	return g, nil
}

// From2D builds a grid from a literal 2-D slice, deep-copying it so later
// changes to cells do not leak either way.
// Returns ErrShape if the rows have differing lengths.
// Complexity: O(W×H).
func From2D(cells [][]Cell) (*Grid, error) {
	if len(cells) > 0 {
		w := len(cells[0])
		for i, row := range cells {
			if len(row) != w {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, i, len(row), w)
			}
		}
	}

	return &Grid{rows: copyRows(cells)}, nil
}

func copyRows(src [][]Cell) [][]Cell {
	dst := make([][]Cell, len(src))
	for i, row := range src {
		dst[i] = make([]Cell, len(row))
		copy(dst[i], row)
	}
	return dst
}

// Width is the number of cells per row (0 for a grid with no rows).
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Height is the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// At returns the cell at (row, col), or ErrIndex.
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrIndex, row, col, g.Height(), g.Width())
	}
	return g.rows[row][col], nil
}

// Rows returns a deep copy of the cell matrix.
func (g *Grid) Rows() [][]Cell { return copyRows(g.rows) }

// Clear empties every cell in place.
func (g *Grid) Clear() {
	for _, row := range g.rows {
		for j := range row {
			row[j] = Cell{}
		}
	}
}

// Reflect flips the grid vertically in place by reversing row order.
func (g *Grid) Reflect() {
	for i, j := 0, len(g.rows)-1; i < j; i, j = i+1, j-1 {
		g.rows[i], g.rows[j] = g.rows[j], g.rows[i]
	}
}

// Rotate replaces g with its 90° clockwise rotation:
// new(i, j) = old(h-1-j, i). A grid without rows is left unchanged.
// Complexity: O(W×H) time and memory.
func (g *Grid) Rotate() {
	h := len(g.rows)
	if h == 0 {
		return
	}
	w := len(g.rows[0])
	rotated := make([][]Cell, w)
	for i := 0; i < w; i++ {
		rotated[i] = make([]Cell, h)
		for j := 0; j < h; j++ {
			rotated[i][j] = g.rows[h-1-j][i]
		}
	}
	g.rows = rotated
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: copyRows(g.rows)}
}

// SetCell writes v at (row, col). Returns ErrIndex if the cell does not exist.
func (g *Grid) SetCell(row, col int, v Cell) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrIndex, row, col, g.Height(), g.Width())
	}
	g.rows[row][col] = v
	return nil
}

// SetCells writes v at every coordinate. All coordinates are checked
// before anything is written, so on ErrIndex the grid is unchanged.
func (g *Grid) SetCells(coords []Coord, v Cell) error {
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrIndex, c.Row, c.Col, g.Height(), g.Width())
		}
	}
	for _, c := range coords {
		g.rows[c.Row][c.Col] = v
	}
	return nil
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	var n int
	for _, row := range g.rows {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || len(g.rows) != len(other.rows) {
		return false
	}
	for i, row := range g.rows {
		if len(row) != len(other.rows[i]) {
			return false
		}
		for j, c := range row {
			if c != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}

// String dumps the grid one row per line, cells separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
