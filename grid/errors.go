package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates rows of differing lengths or negative dimensions.
	ErrShape = errors.New("grid: rows must be rectangular with non-negative dimensions")
	// ErrIndex indicates a coordinate outside the current grid extent.
	ErrIndex = errors.New("grid: coordinate out of range")
	// ErrOutOfBounds indicates an overlay that exceeds the target grid.
	ErrOutOfBounds = errors.New("grid: overlay out of bounds")
	// ErrInvalidColor indicates a colour literal that could not be parsed.
	ErrInvalidColor = errors.New("grid: invalid color")
	// ErrInvalidGlyph indicates a glyph that is not exactly one grapheme cluster.
	ErrInvalidGlyph = errors.New("grid: glyph must be a single grapheme cluster")
)

// Direction names the edge an overlay crossed.
type Direction int

const (
	// TooFarDown: an overlay row lands below the last row.
	TooFarDown Direction = iota
	// TooFarRight: an overlay column lands past the last column.
	TooFarRight
	// TooFarUp: a negative row offset.
	TooFarUp
	// TooFarLeft: a negative column offset.
	TooFarLeft
)

// String returns the human-readable form used in error messages.
func (d Direction) String() string {
	switch d {
	case TooFarDown:
		return "too far down"
	case TooFarRight:
		return "too far right"
	case TooFarUp:
		return "too far up"
	case TooFarLeft:
		return "too far left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// OutOfBoundsError is returned by Add when the overlay does not fit.
// Row and Col are the destination coordinates that were missing.
type OutOfBoundsError struct {
	Direction Direction
	Row, Col  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: %s (row %d, col %d)", e.Direction, e.Row, e.Col)
}

// Is reports ErrOutOfBounds as a match so callers can use errors.Is.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
