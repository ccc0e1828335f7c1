package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadrille/grid"
)

func TestDraw_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	g, err := grid.From2D([][]grid.Cell{
		{grid.Color(10, 20, 30), grid.MustGlyph("x")},
		{grid.Empty(), grid.MustGlyph("y")},
	})
	require.NoError(t, err)
	Draw(screen, g, 2)

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, ' ', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(10, 20, 30), bg)

	mainc, _, _, _ = screen.GetContent(2, 0)
	assert.Equal(t, 'x', mainc)
	mainc, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '·', mainc)
	mainc, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, 'y', mainc)
}

func TestShow_ReturnsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	g, err := grid.New(1, 1)
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	Show(screen, g, 2)
}
