package life

import "errors"

// Domain errors for universe construction and pattern placement.
var (
	// ErrInvalidDimensions indicates a non-positive width or height, or a
	// grid whose cell count would overflow the addressable index range.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")

	// ErrUnknownPattern indicates a pattern name with no registered shape.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
