// Package textrender prints grids as text, one line per row.
package textrender

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/quadrille/grid"
)

// Renderer writes cells to W. It implements grid.Renderer; each cell
// occupies Edge terminal columns (at least 1).
//
// With ANSI set, colour cells are painted with 24-bit background escape
// codes; otherwise they are drawn with full blocks.
type Renderer struct {
	W    io.Writer
	ANSI bool

	err error
}

const (
	emptyMark = "·"
	blockMark = "█"
)

// DrawCell implements grid.Renderer. The first write error is kept and
// later cells are skipped; see Err.
func (r *Renderer) DrawCell(v grid.CellView) {
	if r.err != nil {
		return
	}
	edge := v.Edge
	if edge < 1 {
		edge = 1
	}
	if v.Col == 0 && v.Row > 0 {
		r.write("\n")
	}
	switch v.Kind() {
	case grid.KindColor:
		rgb, _ := v.Cell.RGB()
		if r.ANSI {
			r.write(fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", rgb.R, rgb.G, rgb.B, strings.Repeat(" ", edge)))
		} else {
			r.write(strings.Repeat(blockMark, edge))
		}
	case grid.KindGlyph:
		s, _ := v.Cell.Text()
		r.write(pad(s, edge))
	default:
		r.write(pad(emptyMark, edge))
	}
}

// Err returns the first write error.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) write(s string) {
	if r.err == nil {
		_, r.err = io.WriteString(r.W, s)
	}
}

// pad left-aligns s in a field of width terminal columns. Wide glyphs
// (emoji, CJK) count as two columns.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Render draws g to w with the given cell edge and ends with a newline.
func Render(w io.Writer, g *grid.Grid, edge int, ansi bool) error {
	r := &Renderer{W: w, ANSI: ansi}
	g.Draw(r, edge)
	if g.Height() > 0 {
		r.write("\n")
	}
	return r.Err()
}

// String renders g without ANSI codes.
func String(g *grid.Grid, edge int) string {
	var sb strings.Builder
	_ = Render(&sb, g, edge, false)
	return sb.String()
}
