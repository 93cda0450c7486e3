package mandelview

import "errors"

// Package errors. All startup failure is fatal: NewApp wraps one of
// these and the entry point exits.
var (
	// ErrShaderCompile is returned when the fragment shader fails to compile.
	ErrShaderCompile = errors.New("mandelview: shader compilation failed")

	// ErrInvalidExtent is returned when a window dimension is not positive.
	ErrInvalidExtent = errors.New("mandelview: invalid window extent")

	// ErrInvalidViewport is returned when a viewport half-extent is not positive.
	ErrInvalidViewport = errors.New("mandelview: invalid viewport extents")
)
