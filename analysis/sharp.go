package analysis

import (
	"math"
	"sort"

	"github.com/WenyinWei/zlayout/geometry"
)

// DefaultSharpAngleThreshold is the interior angle, in degrees, below
// which a vertex is flagged as sharp.
const DefaultSharpAngleThreshold = 30.0

// SharpAngles scans every vertex of every polygon and flags the ones
// whose interior angle is below thresholdDeg. The interior angle at
// vertex i is computed from the two incident edges via atan2 of their
// signed angle difference, folded into [0, 180]; this matches the
// vertex-local nature of the check, so no spatial index is consulted.
//
// Grounded on zlayout.analysis.PolygonAnalyzer.analyze_sharp_angles,
// resolving degrees of freedom left open there toward the atan2
// formulation rather than the acos/min(angle, 180-angle) variant also
// present in that source.
func SharpAngles(polys []IndexedPolygon, thresholdDeg float64) SharpAngleResult {
	var flagged []SharpAngle
	var sum float64
	var n int
	sharpest := 180.0

	for _, ip := range polys {
		verts := ip.Polygon.Vertices()
		count := len(verts)
		for i := 0; i < count; i++ {
			prev := verts[(i-1+count)%count]
			cur := verts[i]
			next := verts[(i+1)%count]

			angle := interiorAngleDeg(prev, cur, next)
			n++
			if angle < sharpest {
				sharpest = angle
			}
			if angle < thresholdDeg {
				sum += angle
				flagged = append(flagged, SharpAngle{
					PolygonID: ip.ID,
					VertexIdx: i,
					AngleDeg:  angle,
				})
			}
		}
	}

	result := SharpAngleResult{SharpAngles: flagged, SharpestAngle: sharpest, AverageAngle: 90}
	if n == 0 {
		result.SharpestAngle = 180
		return result
	}
	if len(flagged) > 0 {
		result.AverageAngle = sum / float64(len(flagged))
	}

	sort.Slice(result.SharpAngles, func(i, j int) bool {
		a, b := result.SharpAngles[i], result.SharpAngles[j]
		if a.PolygonID != b.PolygonID {
			return a.PolygonID < b.PolygonID
		}
		return a.VertexIdx < b.VertexIdx
	})

	return result
}

// interiorAngleDeg returns the interior angle at cur formed by the
// incoming edge prev->cur and the outgoing edge cur->next, folded into
// [0, 180].
func interiorAngleDeg(prev, cur, next geometry.Point) float64 {
	v1 := prev.Sub(cur)
	v2 := next.Sub(cur)

	angle1 := math.Atan2(v1.Y, v1.X)
	angle2 := math.Atan2(v2.Y, v2.X)

	diff := angle2 - angle1
	for diff < 0 {
		diff += 2 * math.Pi
	}
	for diff >= 2*math.Pi {
		diff -= 2 * math.Pi
	}

	deg := diff * 180 / math.Pi
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}
