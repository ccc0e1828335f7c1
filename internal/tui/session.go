package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/quadrille"
	"github.com/katalvlaran/quadrille/grid"
)

// Session is an interactive placement loop: a piece hovers over a board
// and is moved, turned and glued from the keyboard.
//
//	←  reflect        →  rotate
//	a/d left/right    w/s up/down
//	g  glue (overwrite)
//	v  glue (only without collisions)
//	q / Esc  quit
type Session struct {
	Board *grid.Grid
	Piece *grid.Grid
	Row   int
	Col   int
	Edge  int
	Log   *slog.Logger
}

// Frame returns what the screen shows: the board with the piece previewed
// at its position, or the bare board when the piece does not fit there.
func (s *Session) Frame() *grid.Grid {
	res, err := quadrille.Overlay(s.Board, s.Piece, s.Row, s.Col)
	if err != nil {
		return s.Board
	}
	return res.Grid
}

// Handle applies one key and reports whether the session should end.
func (s *Session) Handle(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		s.Piece.Reflect()
		return false
	case tcell.KeyRight:
		s.Piece.Rotate()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'a':
		s.Col--
	case 'd':
		s.Col++
	case 'w':
		s.Row--
	case 's':
		s.Row++
	case 'g':
		s.glue(false)
	case 'v':
		s.glue(true)
	}
	return false
}

func (s *Session) glue(validate bool) {
	board, ok, err := quadrille.Glue(s.Board, s.Piece, s.Row, s.Col, validate)
	if err != nil {
		s.logger().Warn("glue rejected", "row", s.Row, "col", s.Col, "err", err)
		return
	}
	if !ok {
		s.logger().Info("glue refused: collision", "row", s.Row, "col", s.Col)
		return
	}
	s.Board = board
}

func (s *Session) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

// Run draws the session and processes events until quit or the screen is
// finalised.
func Run(scr tcell.Screen, s *Session) {
	Draw(scr, s.Frame(), s.Edge)
	for {
		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			if s.Handle(ev) {
				return
			}
		case nil:
			return
		}
		Draw(scr, s.Frame(), s.Edge)
	}
}
