package geometry

import "math"

// Polygon is an ordered sequence of >= 3 vertices, interpreted as a
// closed simple polygon: the edge from the last vertex back to the
// first is implicit. Self-intersection is not enforced at
// construction. Polygons are value-ish objects — NewPolygon copies
// the supplied slice, and Vertices returns a defensive copy — so a
// Polygon is never mutated by the core after construction.
type Polygon struct {
	vertices []Point
}

// NewPolygon returns a polygon over vertices. It returns
// ErrTooFewVertices if fewer than 3 vertices are supplied, and
// ErrNonFiniteCoordinate if any vertex has a NaN or infinite
// coordinate.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrTooFewVertices
	}
	cp := make([]Point, len(vertices))
	for i, v := range vertices {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return Polygon{}, ErrNonFiniteCoordinate
		}
		cp[i] = v
	}
	return Polygon{vertices: cp}, nil
}

// Vertices returns a defensive copy of the polygon's vertices.
func (p Polygon) Vertices() []Point {
	cp := make([]Point, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// VertexCount returns the number of vertices.
func (p Polygon) VertexCount() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex, indices taken modulo VertexCount so
// that adjacent-vertex arithmetic (i-1, i+1) never needs special
// casing at the ends.
func (p Polygon) Vertex(i int) Point {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Edge is a directed pair of adjacent polygon vertices.
type Edge struct {
	A, B Point
}

// Edges returns every edge of the polygon, in vertex-index order: the
// edge from vertex i to vertex i+1 (mod n), including the implicit
// closing edge from the last vertex back to the first.
func (p Polygon) Edges() []Edge {
	n := len(p.vertices)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{A: p.vertices[i], B: p.vertices[(i+1)%n]}
	}
	return edges
}

// Perimeter returns the sum of edge lengths.
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for _, e := range p.Edges() {
		total += Distance(e.A, e.B)
	}
	return total
}

// BoundingBox returns the smallest axis-aligned rectangle containing
// every vertex. It strictly contains or touches every vertex;
// shrinking it by any positive amount excludes at least one vertex.
func (p Polygon) BoundingBox() Rectangle {
	minX, maxX := p.vertices[0].X, p.vertices[0].X
	minY, maxY := p.vertices[0].Y, p.vertices[0].Y
	for _, v := range p.vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Rectangle{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Area returns the polygon's area via the shoelace formula (absolute
// value of the signed area, halved).
func (p Polygon) Area() float64 {
	n := len(p.vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.vertices[i].X*p.vertices[j].Y - p.vertices[j].X*p.vertices[i].Y
	}
	return math.Abs(sum) / 2.0
}

// IsConvex reports whether consecutive cross products of edge vectors
// share a single sign. Zero cross products (collinear triples) are
// inconclusive and are ignored; a triangle is always convex.
func (p Polygon) IsConvex() bool {
	n := len(p.vertices)
	if n == 3 {
		return true
	}
	var sign int // -1, 0 (undetermined), or +1
	for i := 0; i < n; i++ {
		o := p.vertices[i]
		a := p.vertices[(i+1)%n]
		b := p.vertices[(i+2)%n]
		cp := a.Sub(o).Cross(b.Sub(o))
		if math.Abs(cp) <= Epsilon {
			continue
		}
		s := 1
		if cp < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether q lies inside p using ray casting in
// the +x direction. A point lying on any edge is considered inside.
func (p Polygon) ContainsPoint(q Point) bool {
	for _, e := range p.Edges() {
		if DistanceToSegment(q, e.A, e.B) < Epsilon {
			return true
		}
	}
	inside := false
	n := len(p.vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y > q.Y) != (vj.Y > q.Y) {
			xIntersect := (q.Y-vi.Y)*(vj.X-vi.X)/(vj.Y-vi.Y) + vi.X
			if q.X < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
