package geometry

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle represented by an origin
// (X, Y) and non-negative extents (W, H).
type Rectangle struct {
	X, Y, W, H float64
}

// NewRectangle returns the rectangle with origin (x, y) and extents
// (w, h). Negative extents are a construction error the caller is
// expected to reject before storing the rectangle (see the
// InvalidArgument taxonomy in layout.Processor.AddRectangle); this
// constructor itself does not panic or return an error so that it
// remains usable for zero-value-adjacent composition (e.g. Union).
func NewRectangle(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// NewValidRectangle is like NewRectangle but enforces the
// InvalidArgument taxonomy: it rejects non-finite coordinates and
// negative extents instead of constructing a malformed rectangle.
func NewValidRectangle(x, y, w, h float64) (Rectangle, error) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return Rectangle{}, ErrNonFiniteCoordinate
	}
	if w < 0 || h < 0 {
		return Rectangle{}, ErrNegativeExtent
	}
	return Rectangle{X: x, Y: y, W: w, H: h}, nil
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}

// Valid reports whether r has non-negative extents and every field is
// finite. Callers that accept rectangles from outside the package
// should check this and reject InvalidArgument inputs before storing.
func (r Rectangle) Valid() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H) &&
		r.W >= 0 && r.H >= 0
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Right() float64  { return r.X + r.W }
func (r Rectangle) Bottom() float64 { return r.Y }
func (r Rectangle) Top() float64    { return r.Y + r.H }

// Center returns the rectangle's geometric center.
func (r Rectangle) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Area returns r.W * r.H.
func (r Rectangle) Area() float64 {
	return r.W * r.H
}

// ContainsPoint reports whether p lies within r, boundary included.
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Intersects reports whether r and other overlap. The test is closed:
// rectangles that merely touch along an edge are considered
// intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(r.Right() < other.Left() || other.Right() < r.Left() ||
		r.Top() < other.Bottom() || other.Top() < r.Bottom())
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	left := math.Min(r.Left(), other.Left())
	bottom := math.Min(r.Bottom(), other.Bottom())
	right := math.Max(r.Right(), other.Right())
	top := math.Max(r.Top(), other.Top())
	return Rectangle{X: left, Y: bottom, W: right - left, H: top - bottom}
}

// Expand returns r grown by amount in every direction. A negative
// amount shrinks r; callers are responsible for not shrinking past
// zero extent.
func (r Rectangle) Expand(amount float64) Rectangle {
	return Rectangle{
		X: r.X - amount,
		Y: r.Y - amount,
		W: r.W + 2*amount,
		H: r.H + 2*amount,
	}
}

// ToPolygon converts r to its 4-vertex polygon representation, in
// counter-clockwise order starting at the bottom-left corner.
func (r Rectangle) ToPolygon() Polygon {
	p, err := NewPolygon([]Point{
		{r.Left(), r.Bottom()},
		{r.Right(), r.Bottom()},
		{r.Right(), r.Top()},
		{r.Left(), r.Top()},
	})
	if err != nil {
		// Four well-formed, finite vertices can never fail construction.
		panic(err)
	}
	return p
}
