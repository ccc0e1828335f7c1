package grid

// CellView is what a renderer receives for each cell: the cell, where it
// sits, and the edge length the caller asked cells to be drawn with.
type CellView struct {
	Row, Col int
	Edge     int
	Cell     Cell
}

// Kind is a shorthand for v.Cell.Kind().
func (v CellView) Kind() Kind { return v.Cell.Kind() }

// Renderer draws cells. The grid imposes no drawing behaviour of its own;
// implementations decide what empty, colour and glyph cells look like.
type Renderer interface {
	DrawCell(v CellView)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(v CellView)

// DrawCell calls f(v).
func (f RendererFunc) DrawCell(v CellView) { f(v) }

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for i, row := range g.rows {
		for j, c := range row {
			fn(i, j, c)
		}
	}
}

// Draw hands every cell, row-major, to r together with edge.
func (g *Grid) Draw(r Renderer, edge int) {
	g.Each(func(row, col int, c Cell) {
		r.DrawCell(CellView{Row: row, Col: col, Edge: edge, Cell: c})
	})
}
