// Package tui draws grids on a tcell screen.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/quadrille/grid"
)

var emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Renderer paints cells onto Screen with the grid's top-left corner at
// (X, Y). Each cell spans Edge columns and one row. It implements
// grid.Renderer.
type Renderer struct {
	Screen tcell.Screen
	X, Y   int
}

// DrawCell implements grid.Renderer.
func (r *Renderer) DrawCell(v grid.CellView) {
	edge := v.Edge
	if edge < 1 {
		edge = 1
	}
	x, y := r.X+v.Col*edge, r.Y+v.Row

	switch v.Kind() {
	case grid.KindColor:
		rgb, _ := v.Cell.RGB()
		st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
		r.fill(x, y, edge, ' ', st)
	case grid.KindGlyph:
		s, _ := v.Cell.Text()
		runes := []rune(s)
		r.fill(x, y, edge, ' ', tcell.StyleDefault)
		r.Screen.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
	default:
		r.fill(x, y, edge, ' ', emptyStyle)
		r.Screen.SetContent(x, y, '·', nil, emptyStyle)
	}
}

func (r *Renderer) fill(x, y, n int, ch rune, st tcell.Style) {
	for i := 0; i < n; i++ {
		r.Screen.SetContent(x+i, y, ch, nil, st)
	}
}

// Draw clears the screen, paints g at the top-left corner and shows it.
func Draw(s tcell.Screen, g *grid.Grid, edge int) {
	s.Clear()
	g.Draw(&Renderer{Screen: s}, edge)
	s.Show()
}

// Show draws g and blocks until a key is pressed, redrawing on resize.
// The caller owns the screen lifecycle (Init / Fini).
func Show(s tcell.Screen, g *grid.Grid, edge int) {
	Draw(s, g, edge)
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			Draw(s, g, edge)
		case *tcell.EventKey:
			return
		case nil:
			// screen finalised
			return
		}
	}
}
