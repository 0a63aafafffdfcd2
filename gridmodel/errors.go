package gridmodel

import "errors"

// ErrTooManyTraversingPaths is the capacity error from spec.md section 7:
// a cell's congestion (or path-center) list would exceed MaxTraversingPaths.
var ErrTooManyTraversingPaths = errors.New("gridmodel: numTraversingPaths would exceed capacity")

// ErrOutOfBounds is returned when a Coordinate falls outside a CellGrid's
// declared dimensions.
var ErrOutOfBounds = errors.New("gridmodel: coordinate out of bounds")

// ErrInvalidDimensions is returned when constructing a CellGrid with a
// nonpositive width, height, or layer count.
var ErrInvalidDimensions = errors.New("gridmodel: width, height, and layers must be positive")
