package geometry

import "math"

// isFinite reports whether f is neither NaN nor infinite, the
// condition the InvalidArgument taxonomy requires of every coordinate.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
