// Package analysis implements the three polygon analyzers of the
// layout-geometry engine: sharp-angle detection, narrow edge-to-edge
// distance detection, and edge-intersection detection. Every analyzer
// consumes the same (polygon-id, polygon) set and, where it cooperates
// with a spatial index, narrows candidate pairs through it before
// running exact geometric predicates.
//
// Grounded on the original zlayout.analysis.PolygonAnalyzer: the same
// three scans, restructured around package spatial for the
// index-cooperation spec §4.2.2/§4.2.3 require instead of a brute
// O(n^2) double loop.
package analysis

import "github.com/WenyinWei/zlayout/geometry"

// PolygonID identifies a polygon within the analyzer's input set. It
// is the same integer a layout.Processor hands out as a component
// handle.
type PolygonID int

// IndexedPolygon pairs a polygon with the id it was registered under.
type IndexedPolygon struct {
	ID      PolygonID
	Polygon geometry.Polygon
}

// SharpAngle is one flagged vertex: its polygon, its vertex index, and
// its interior angle in degrees.
type SharpAngle struct {
	PolygonID  PolygonID
	VertexIdx  int
	AngleDeg   float64
}

// SharpAngleResult is the outcome of a sharp-angle scan. SharpestAngle
// is the smallest interior angle over every scanned vertex, flagged or
// not, and defaults to 180 on an empty input. AverageAngle is the mean
// interior angle of the flagged vertices and defaults to 90 when no
// vertex is flagged, per spec §7's "zero-filled... default best
// values" rule.
type SharpAngleResult struct {
	SharpAngles   []SharpAngle
	SharpestAngle float64
	AverageAngle  float64
}

// Count returns the number of flagged vertices.
func (r SharpAngleResult) Count() int { return len(r.SharpAngles) }

// NarrowRegion is a pair of edges (possibly from the same polygon)
// whose minimum inter-point distance is below the analyzer's
// threshold, reported with the closest endpoint pair found.
type NarrowRegion struct {
	P1, P2   geometry.Point
	Distance float64
}

// NarrowDistanceResult is the outcome of a narrow-distance scan.
// Minimum/Maximum/Average are computed over every pairwise distance
// observed, not only the ones below the threshold. On an empty input,
// MinDistance is +Inf (the sentinel spec §7 names) and
// MaxDistance/AverageDistance are 0.
type NarrowDistanceResult struct {
	NarrowRegions []NarrowRegion
	MinDistance   float64
	MaxDistance   float64
	AverageDistance float64
}

// Count returns the number of narrow regions found.
func (r NarrowDistanceResult) Count() int { return len(r.NarrowRegions) }

// PolygonPair is an unordered pair of polygon ids, always stored with
// the smaller id first.
type PolygonPair struct {
	A, B PolygonID
}

// IntersectionResult is the outcome of an edge-intersection scan.
type IntersectionResult struct {
	Pairs           []PolygonPair
	Points          []geometry.Point
	TotalIntersections int
}

// PairCount returns the number of distinct intersecting polygon pairs.
func (r IntersectionResult) PairCount() int { return len(r.Pairs) }
