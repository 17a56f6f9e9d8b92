package analysis

import (
	"math"

	"github.com/WenyinWei/zlayout/geometry"
	"github.com/WenyinWei/zlayout/spatial"
)

// DefaultNarrowDistanceThreshold is the minimum clearance, in layout
// units, below which an edge pair is flagged as a narrow region.
const DefaultNarrowDistanceThreshold = 1.0

// NarrowDistances finds edge pairs — between distinct polygons and
// between non-adjacent edges of the same polygon — whose minimum
// distance is below threshold. Candidate polygon pairs are narrowed
// through a spatial index before the exact edge-to-edge distance is
// computed, turning the O(P^2 * E^2) brute check into roughly
// O((P+K) * E^2) for K candidates per polygon.
//
// Grounded on zlayout.analysis.PolygonAnalyzer.analyze_narrow_distances,
// rebuilt to consult a spatial index rather than compare every polygon
// pair.
func NarrowDistances(polys []IndexedPolygon, threshold float64) NarrowDistanceResult {
	result := NarrowDistanceResult{MinDistance: math.Inf(1)}
	if len(polys) == 0 {
		result.MinDistance = math.Inf(1)
		result.MaxDistance = 0
		result.AverageDistance = 0
		return result
	}

	world := polys[0].Polygon.BoundingBox()
	byID := make(map[spatial.Handle]IndexedPolygon, len(polys))
	for _, ip := range polys {
		world = world.Union(ip.Polygon.BoundingBox())
		byID[spatial.Handle(ip.ID)] = ip
	}

	idx := spatial.NewDefault(world)
	for _, ip := range polys {
		idx.Insert(spatial.Handle(ip.ID), ip.Polygon.BoundingBox())
	}

	var sum float64
	var count int
	seen := make(map[PolygonPair]bool)

	recordDistance := func(p1, p2 geometry.Point, d float64) {
		sum += d
		count++
		if d < result.MinDistance {
			result.MinDistance = d
		}
		if d > result.MaxDistance {
			result.MaxDistance = d
		}
		if d < threshold {
			result.NarrowRegions = append(result.NarrowRegions, NarrowRegion{P1: p1, P2: p2, Distance: d})
		}
	}

	for _, ip := range polys {
		bbox := ip.Polygon.BoundingBox().Expand(threshold)
		for _, h := range idx.RangeQuery(bbox) {
			other, ok := byID[h]
			if !ok || other.ID <= ip.ID {
				continue
			}
			pair := PolygonPair{A: ip.ID, B: other.ID}
			if seen[pair] {
				continue
			}
			seen[pair] = true

			for _, e1 := range ip.Polygon.Edges() {
				for _, e2 := range other.Polygon.Edges() {
					p1, p2, d := closestEdgePoints(e1, e2)
					recordDistance(p1, p2, d)
				}
			}
		}

		edges := ip.Polygon.Edges()
		n := len(edges)
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // adjacent via wraparound
				}
				p1, p2, d := closestEdgePoints(edges[i], edges[j])
				recordDistance(p1, p2, d)
			}
		}
	}

	if count == 0 {
		result.MinDistance = math.Inf(1)
		result.MaxDistance = 0
		result.AverageDistance = 0
		return result
	}
	result.AverageDistance = sum / float64(count)
	return result
}

// closestEdgePoints returns the minimum distance between e1 and e2 as
// geometry.SegmentDistance computes it (0 for crossing edges, else the
// min over the four endpoint-to-opposite-segment distances), paired with the raw
// endpoint combination geometry.ClosestEndpoints reports as closest —
// no interior-projection point is ever returned as P1/P2, per the
// narrow-region reporting contract.
func closestEdgePoints(e1, e2 geometry.Edge) (geometry.Point, geometry.Point, float64) {
	dist := geometry.SegmentDistance(e1.A, e1.B, e2.A, e2.B)
	p1, p2, _ := geometry.ClosestEndpoints(e1.A, e1.B, e2.A, e2.B)
	return p1, p2, dist
}
