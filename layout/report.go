package layout

import "fmt"

// OptimizationRecord embeds the full analysis alongside a derived
// score and an ordered list of human-readable suggestions.
type OptimizationRecord struct {
	AnalysisRecord
	Score       float64
	Suggestions []string
}

// Score computes the 0-100 layout quality score from an analysis
// record: start at 100 and subtract capped penalties per category.
//
// Grounded on zlayout.analysis.GeometryProcessor._calculate_optimization_score;
// the three penalty weights and caps are carried verbatim.
func Score(r AnalysisRecord) float64 {
	score := 100.0
	score -= capped(float64(r.SharpAngles.Count())*5, 30)
	score -= capped(float64(r.NarrowDistances.Count())*10, 40)
	score -= capped(float64(r.Intersections.PairCount())*20, 50)
	if score < 0 {
		score = 0
	}
	return score
}

func capped(penalty, cap float64) float64 {
	if penalty > cap {
		return cap
	}
	return penalty
}

// Suggestions returns one message per non-empty category, in the
// fixed order sharp angles, narrow distances, intersections.
//
// Grounded on zlayout.analysis.GeometryProcessor.optimize_layout.
func Suggestions(r AnalysisRecord) []string {
	var out []string
	if n := r.SharpAngles.Count(); n > 0 {
		out = append(out, fmt.Sprintf(
			"Found %d sharp angles. Consider rounding corners or adjusting geometry.", n))
	}
	if n := r.NarrowDistances.Count(); n > 0 {
		out = append(out, fmt.Sprintf(
			"Found %d narrow regions. Minimum distance: %.3f", n, r.NarrowDistances.MinDistance))
	}
	if n := r.Intersections.PairCount(); n > 0 {
		out = append(out, fmt.Sprintf(
			"Found %d intersecting polygon pairs. Total intersection points: %d",
			n, r.Intersections.TotalIntersections))
	}
	return out
}
