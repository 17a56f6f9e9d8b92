package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WenyinWei/zlayout/geometry"
)

func mustPolygon(t *testing.T, verts []geometry.Point) geometry.Polygon {
	t.Helper()
	p, err := geometry.NewPolygon(verts)
	require.NoError(t, err)
	return p
}

func TestSharpAnglesEmptyInputDefaults(t *testing.T) {
	r := SharpAngles(nil, DefaultSharpAngleThreshold)
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, 180.0, r.SharpestAngle)
	assert.Equal(t, 90.0, r.AverageAngle)
}

func TestSharpAnglesSquareHasNoSharpVertices(t *testing.T) {
	sq := mustPolygon(t, []geometry.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	r := SharpAngles([]IndexedPolygon{{ID: 1, Polygon: sq}}, DefaultSharpAngleThreshold)
	assert.Equal(t, 0, r.Count())
	assert.InDelta(t, 90.0, r.SharpestAngle, 1e-9)
	assert.InDelta(t, 90.0, r.AverageAngle, 1e-9)
}

func TestSharpAnglesRightTriangleFlagsAcuteVertex(t *testing.T) {
	// A thin right triangle with one very acute vertex at the origin.
	tri := mustPolygon(t, []geometry.Point{{0, 0}, {10, 0}, {10, 1}})
	r := SharpAngles([]IndexedPolygon{{ID: 1, Polygon: tri}}, DefaultSharpAngleThreshold)
	require.GreaterOrEqual(t, r.Count(), 1)
	assert.Less(t, r.SharpestAngle, DefaultSharpAngleThreshold)
	for _, sa := range r.SharpAngles {
		assert.Equal(t, PolygonID(1), sa.PolygonID)
	}
}

func TestSharpAnglesThresholdBoundaryIsExclusive(t *testing.T) {
	sq := mustPolygon(t, []geometry.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	r := SharpAngles([]IndexedPolygon{{ID: 1, Polygon: sq}}, 90.0)
	assert.Equal(t, 0, r.Count(), "a 90 degree angle must not be flagged by a 90 degree threshold")

	r2 := SharpAngles([]IndexedPolygon{{ID: 1, Polygon: sq}}, 90.0001)
	assert.Equal(t, 4, r2.Count())
}

func TestSharpAnglesOrderedByPolygonThenVertex(t *testing.T) {
	tri := mustPolygon(t, []geometry.Point{{0, 0}, {10, 0}, {10, 1}})
	r := SharpAngles([]IndexedPolygon{
		{ID: 2, Polygon: tri},
		{ID: 1, Polygon: tri},
	}, DefaultSharpAngleThreshold)
	require.GreaterOrEqual(t, len(r.SharpAngles), 2)
	for i := 1; i < len(r.SharpAngles); i++ {
		prev, cur := r.SharpAngles[i-1], r.SharpAngles[i]
		if prev.PolygonID == cur.PolygonID {
			assert.LessOrEqual(t, prev.VertexIdx, cur.VertexIdx)
		} else {
			assert.Less(t, prev.PolygonID, cur.PolygonID)
		}
	}
}
