package geometry

import "errors"

// ErrTooFewVertices is returned by NewPolygon when fewer than 3
// vertices are supplied.
var ErrTooFewVertices = errors.New("geometry: polygon must have at least 3 vertices")

// ErrNonFiniteCoordinate is returned by NewPolygon or NewValidRectangle
// when a coordinate is NaN or infinite.
var ErrNonFiniteCoordinate = errors.New("geometry: coordinate is NaN or infinite")

// ErrNegativeExtent is returned by NewValidRectangle when width or
// height is negative.
var ErrNegativeExtent = errors.New("geometry: rectangle extent must be non-negative")
