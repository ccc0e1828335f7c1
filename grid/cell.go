package grid

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Kind is the logical kind of a cell, as seen by renderers.
type Kind uint8

const (
	// KindEmpty marks an unoccupied cell.
	KindEmpty Kind = iota
	// KindColor marks a cell filled with a solid colour.
	KindColor
	// KindGlyph marks a cell holding a single grapheme (letter, emoji…).
	KindGlyph
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindColor:
		return "color"
	case KindGlyph:
		return "glyph"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Cell is one grid value. The zero Cell is empty, which is the identity
// of composition: it never overwrites and is always overwritten.
// Cells are comparable with ==.
type Cell struct {
	kind  Kind
	rgb   RGB
	glyph string
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// Color returns a solid colour cell.
func Color(r, g, b uint8) Cell {
	return Cell{kind: KindColor, rgb: RGB{R: r, G: g, B: b}}
}

// ColorHex parses "#rrggbb" into a colour cell.
func ColorHex(s string) (Cell, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return Color(r, g, b), nil
}

// MustColorHex is ColorHex for literals; it panics on malformed input.
func MustColorHex(s string) Cell {
	c, err := ColorHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Glyph returns a text cell. s must be exactly one grapheme cluster, so
// "g", "🙈" and "👩‍🚀" are accepted while "" and "go" are not.
func Glyph(s string) (Cell, error) {
	if uniseg.GraphemeClusterCount(s) != 1 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidGlyph, s)
	}
	return Cell{kind: KindGlyph, glyph: s}, nil
}

// MustGlyph is Glyph for literals; it panics on malformed input.
func MustGlyph(s string) Cell {
	c, err := Glyph(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Kind reports the logical kind of c.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether c is unoccupied.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// RGB returns the colour of a KindColor cell and false for any other kind.
func (c Cell) RGB() (RGB, bool) {
	return c.rgb, c.kind == KindColor
}

// Text returns the grapheme of a KindGlyph cell and false for any other kind.
func (c Cell) Text() (string, bool) {
	return c.glyph, c.kind == KindGlyph
}

// String renders the cell for debugging: "·" for empty, the colour hex,
// or the glyph itself.
func (c Cell) String() string {
	switch c.kind {
	case KindColor:
		return c.rgb.Hex()
	case KindGlyph:
		return c.glyph
	default:
		return "·"
	}
}
