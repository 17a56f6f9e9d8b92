package analysis

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/WenyinWei/zlayout/geometry"
	"github.com/WenyinWei/zlayout/spatial"
)

// pairComparator orders PolygonPair values by (A, B), ascending, so a
// treeset built with it yields a deterministic, duplicate-free
// traversal order regardless of discovery order.
func pairComparator(a, b interface{}) int {
	pa, pb := a.(PolygonPair), b.(PolygonPair)
	switch {
	case pa.A != pb.A:
		if pa.A < pb.A {
			return -1
		}
		return 1
	case pa.B != pb.B:
		if pa.B < pb.B {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Intersections finds every pair of polygons with at least one
// crossing edge pair. Candidate pairs are drawn from a spatial index's
// PairCandidates, so only polygons with overlapping bounding boxes are
// tested edge-against-edge. The resulting pair list is deduplicated
// and ordered deterministically by ascending (id1, id2) via a
// comparator-backed tree set; Points is flattened in that same
// ascending-pair order, not the index's internal traversal order, so
// both fields honor the same tie-break rule when reporting results.
//
// Grounded on zlayout.analysis.PolygonAnalyzer.analyze_edge_intersections,
// rebuilt around spatial.QuadTree.PairCandidates instead of a brute
// polygon double loop.
func Intersections(polys []IndexedPolygon) IntersectionResult {
	if len(polys) == 0 {
		return IntersectionResult{}
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

	pairSet := treeset.NewWith(pairComparator)
	pointsByPair := make(map[PolygonPair][]geometry.Point)
	total := 0

	for _, candidate := range idx.PairCandidates() {
		a, b := byID[candidate[0]], byID[candidate[1]]
		pair := PolygonPair{A: a.ID, B: b.ID}
		for _, e1 := range a.Polygon.Edges() {
			for _, e2 := range b.Polygon.Edges() {
				if pt, ok := geometry.SegmentIntersect(e1.A, e1.B, e2.A, e2.B); ok {
					total++
					pointsByPair[pair] = append(pointsByPair[pair], pt)
				}
			}
		}
		if len(pointsByPair[pair]) > 0 {
			pairSet.Add(pair)
		}
	}

	pairs := make([]PolygonPair, 0, pairSet.Size())
	var points []geometry.Point
	for _, v := range pairSet.Values() {
		pair := v.(PolygonPair)
		pairs = append(pairs, pair)
		points = append(points, pointsByPair[pair]...)
	}

	return IntersectionResult{Pairs: pairs, Points: points, TotalIntersections: total}
}
