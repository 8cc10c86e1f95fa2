package hexgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		planar int
		height int
	}{
		{"reference points", NewPoint(1, 2, 5), NewPoint(3, 4, 10), 4, 5},
		{"same point", NewPoint(1, 2, 5), NewPoint(1, 2, 5), 0, 0},
		{"planar only", NewPoint2D(1, 2), NewPoint2D(3, 4), 4, 0},
		{"vertical only", NewPoint(1, 2, 5), NewPoint(1, 2, 1), 0, 4},
		{"negative coordinates", NewPoint(-2, -3, -1), NewPoint(1, 1, 2), 7, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.planar, PlanarDistance(tc.a, tc.b))
			assert.Equal(t, tc.height, HeightDistance(tc.a, tc.b))
			assert.Equal(t, tc.planar+tc.height, Distance(tc.a, tc.b))
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Point{
		{NewPoint(1, 2, 5), NewPoint(3, 4, 10)},
		{NewPoint(0, 0, 0), NewPoint(-7, 3, 2)},
		{NewPoint(5, -5, 1), NewPoint(5, -5, 1)},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.Equal(t, Distance(a, b), Distance(b, a))
		assert.Equal(t, PlanarDistance(a, b), PlanarDistance(b, a))
		assert.Equal(t, HeightDistance(a, b), HeightDistance(b, a))
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, p := range []Point{NewPoint(0, 0, 0), NewPoint(9, -4, 2), NewPoint(-1, -1, -1)} {
		assert.Zero(t, Distance(p, p))
	}
}
