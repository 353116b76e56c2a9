package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"negative", Point{-12.5, 7.25}, true},
		{"nan x", Point{math.NaN(), 0}, false},
		{"nan y", Point{0, math.NaN()}, false},
		{"pos inf", Point{math.Inf(1), 0}, false},
		{"neg inf", Point{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.IsFinite())
		})
	}
}

func TestCornersPointsOrder(t *testing.T) {
	c := NewCorners(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	pts := c.Points()
	assert.Equal(t, c.TL, pts[0])
	assert.Equal(t, c.TR, pts[1])
	assert.Equal(t, c.BR, pts[2])
	assert.Equal(t, c.BL, pts[3])
}

func TestCornersHasNaN(t *testing.T) {
	c := NewCorners(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	assert.False(t, c.HasNaN())

	c.BR.Y = math.NaN()
	assert.True(t, c.HasNaN())

	// Inf alone is not NaN
	c.BR.Y = math.Inf(1)
	assert.False(t, c.HasNaN())
}

func TestCornersCentroid(t *testing.T) {
	c := NewCorners(Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2})
	got := c.Centroid()
	assert.InDelta(t, 1.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
}
