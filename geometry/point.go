// Package geometry implements the primitive 2D geometry (points,
// rectangles, polygons) and the segment kernel (segment-segment
// intersection and orientation tests) that the rest of the layout
// engine builds on.
//
// Every predicate in this package uses a single tolerance, Epsilon,
// for equality, containment, and degeneracy checks. There is no
// higher-precision fallback: callers who need a larger dynamic range
// must scale their coordinates.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the single numeric tolerance used throughout the core.
const Epsilon = 1e-10

// Point is a pair of finite reals (x, y). Points are value objects:
// created by callers and copied freely, never mutated in place.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}

// Equal reports whether p and q are equal within Epsilon on each axis.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// roundedKey rounds p to 10 decimals, the precision Epsilon implies,
// so that two points considered Equal hash identically unless their
// coordinates fall on opposite sides of a rounding boundary.
func (p Point) roundedKey() (int64, int64) {
	const scale = 1e10
	return int64(math.Round(p.X * scale)), int64(math.Round(p.Y * scale))
}

// Hash returns an integer hash of p rounded to 10 decimals. Two points
// that compare Equal produce the same Hash except when a coordinate
// pair straddles a rounding boundary of that grid.
func (p Point) Hash() uint64 {
	rx, ry := p.roundedKey()
	h := uint64(rx)*1099511628211 ^ uint64(ry)
	return h
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns the vector p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q, treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q,
// treated as vectors: p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// LenSqr returns the squared length of p, treated as a vector.
func (p Point) LenSqr() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Len returns the length of p, treated as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.LenSqr())
}

// Distance returns the Euclidean distance between p and q. It is
// non-negative, symmetric, and zero iff p.Equal(q).
func Distance(p, q Point) float64 {
	return p.Sub(q).Len()
}

// DistanceToSegment projects p onto the line through a and b, clamps
// the projection parameter to [0, 1], and returns the Euclidean
// distance from p to the clamped projection. A degenerate segment
// (|b-a|^2 < Epsilon) degrades to Distance(p, a).
func DistanceToSegment(p, a, b Point) float64 {
	return Distance(p, ClosestPointOnSegment(p, a, b))
}

// ClosestPointOnSegment projects p onto the line through a and b and
// clamps the projection parameter to [0, 1], returning the clamped
// point. A degenerate segment (|b-a|^2 < Epsilon) degrades to a.
func ClosestPointOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	lenSqr := ab.LenSqr()
	if lenSqr < Epsilon {
		return a
	}
	ap := p.Sub(a)
	t := ap.Dot(ab) / lenSqr
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
