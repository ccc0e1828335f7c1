package polyomino

import "errors"

// Sentinel errors for polyomino generation.
var (
	// ErrInvalidSize indicates a request for a non-positive size.
	ErrInvalidSize = errors.New("polyomino: size must be a positive integer")
	// ErrEmptyNet indicates Materialize was given a net without points.
	ErrEmptyNet = errors.New("polyomino: net has no points")
	// ErrNoShapes indicates a run converged before reaching the target size.
	ErrNoShapes = errors.New("polyomino: no shape of the requested size was found")
	// ErrDisconnected indicates a materialized shape is not one 4-connected region.
	ErrDisconnected = errors.New("polyomino: shape is not connected")
)
