package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleDerivedFields(t *testing.T) {
	r := NewRectangle(1, 2, 3, 4)
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 2.0, r.Bottom())
	assert.Equal(t, 6.0, r.Top())
	assert.Equal(t, Point{2.5, 4}, r.Center())
	assert.Equal(t, 12.0, r.Area())
}

func TestRectangleContainsPointClosed(t *testing.T) {
	r := NewRectangle(0, 0, 2, 2)
	assert.True(t, r.ContainsPoint(NewPoint(0, 0)))
	assert.True(t, r.ContainsPoint(NewPoint(2, 2)))
	assert.True(t, r.ContainsPoint(NewPoint(1, 1)))
	assert.False(t, r.ContainsPoint(NewPoint(2.0001, 1)))
}

func TestRectangleIntersectsTouchingCounts(t *testing.T) {
	r1 := NewRectangle(0, 0, 1, 1)
	r2 := NewRectangle(1, 0, 1, 1) // touches r1's right edge
	assert.True(t, r1.Intersects(r2))

	r3 := NewRectangle(1.0001, 0, 1, 1)
	assert.False(t, r1.Intersects(r3))
}

func TestRectangleAreaMatchesPolygonArea(t *testing.T) {
	r := NewRectangle(3, 4, 5, 6)
	assert.InDelta(t, r.Area(), r.ToPolygon().Area(), Epsilon)
}

func TestRectangleExpandAndUnion(t *testing.T) {
	r := NewRectangle(0, 0, 2, 2)
	expanded := r.Expand(1)
	assert.Equal(t, NewRectangle(-1, -1, 4, 4), expanded)

	other := NewRectangle(5, 5, 1, 1)
	u := r.Union(other)
	assert.Equal(t, NewRectangle(0, 0, 6, 6), u)
}

func TestNewValidRectangleRejectsBadInput(t *testing.T) {
	_, err := NewValidRectangle(0, 0, -1, 1)
	require.ErrorIs(t, err, ErrNegativeExtent)

	_, err = NewValidRectangle(0, 0, 1, math.Inf(1))
	require.ErrorIs(t, err, ErrNonFiniteCoordinate)

	r, err := NewValidRectangle(0, 0, 1, 1)
	require.NoError(t, err)
	assert.True(t, r.Valid())
}
