package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WenyinWei/zlayout/analysis"
)

func TestScoreCapsEachPenaltyCategory(t *testing.T) {
	record := AnalysisRecord{
		SharpAngles:     analysis.SharpAngleResult{SharpAngles: make([]analysis.SharpAngle, 100)},
		NarrowDistances: analysis.NarrowDistanceResult{NarrowRegions: make([]analysis.NarrowRegion, 100)},
		Intersections:   analysis.IntersectionResult{Pairs: make([]analysis.PolygonPair, 100)},
	}
	assert.Equal(t, 0.0, Score(record))
}

func TestScoreNeverNegative(t *testing.T) {
	record := AnalysisRecord{
		SharpAngles:     analysis.SharpAngleResult{SharpAngles: make([]analysis.SharpAngle, 6)},
		NarrowDistances: analysis.NarrowDistanceResult{NarrowRegions: make([]analysis.NarrowRegion, 4)},
		Intersections:   analysis.IntersectionResult{Pairs: make([]analysis.PolygonPair, 3)},
	}
	assert.Equal(t, 0.0, Score(record))
}

func TestSuggestionsOrderAndContent(t *testing.T) {
	record := AnalysisRecord{
		SharpAngles:     analysis.SharpAngleResult{SharpAngles: []analysis.SharpAngle{{}}},
		NarrowDistances: analysis.NarrowDistanceResult{NarrowRegions: []analysis.NarrowRegion{{Distance: 0.1234}}, MinDistance: 0.1234},
		Intersections:   analysis.IntersectionResult{Pairs: []analysis.PolygonPair{{A: 0, B: 1}}, TotalIntersections: 3},
	}
	s := Suggestions(record)
	if assert.Len(t, s, 3) {
		assert.Contains(t, s[0], "sharp angles")
		assert.Contains(t, s[1], "0.123")
		assert.Contains(t, s[2], "Total intersection points: 3")
	}
}

func TestSuggestionsEmptyWhenNoFindings(t *testing.T) {
	assert.Empty(t, Suggestions(AnalysisRecord{}))
}

func TestStatusFlags(t *testing.T) {
	assert.False(t, StatusOK.OutOfBounds())
	assert.False(t, StatusOK.CapacityExceeded())
	assert.True(t, StatusOutOfBounds.OutOfBounds())
	assert.False(t, StatusOutOfBounds.CapacityExceeded())
	combined := StatusOutOfBounds | StatusCapacityExceeded
	assert.True(t, combined.OutOfBounds())
	assert.True(t, combined.CapacityExceeded())
}
