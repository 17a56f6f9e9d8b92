package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointEqualHashAgreement(t *testing.T) {
	p := NewPoint(1.00000000001, 2.00000000001)
	q := NewPoint(1.00000000002, 2.00000000002)
	require.True(t, p.Equal(q))
	assert.Equal(t, p.Hash(), q.Hash())

	r := NewPoint(1.1, 2.0)
	assert.False(t, p.Equal(r))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(NewPoint(0, 0), NewPoint(3, 4)), Epsilon)
	assert.InDelta(t, 0.0, Distance(NewPoint(1, 1), NewPoint(1, 1)), Epsilon)
}

func TestDistanceToSegment(t *testing.T) {
	cases := []struct {
		name     string
		p, a, b  Point
		expected float64
	}{
		{"midpoint perpendicular", NewPoint(1, 1), NewPoint(0, 0), NewPoint(2, 0), 1},
		{"clamped to start", NewPoint(-1, 0), NewPoint(0, 0), NewPoint(2, 0), 1},
		{"clamped to end", NewPoint(3, 0), NewPoint(0, 0), NewPoint(2, 0), 1},
		{"degenerate segment", NewPoint(3, 4), NewPoint(0, 0), NewPoint(0, 0), 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, DistanceToSegment(c.p, c.a, c.b), 1e-9)
		})
	}
}
