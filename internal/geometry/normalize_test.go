package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCentroidAndScale(t *testing.T) {
	pts := [4]Point{{10, 20}, {110, 20}, {110, 120}, {10, 120}}

	norm, n := Normalize(pts)

	// Centroid of the normalized set is at the origin
	var cx, cy float64
	for _, p := range norm {
		cx += p.X
		cy += p.Y
	}
	assert.InDelta(t, 0, cx/4, 1e-12)
	assert.InDelta(t, 0, cy/4, 1e-12)

	// Mean distance from the centroid is sqrt(2)
	var sum float64
	for _, p := range norm {
		sum += math.Hypot(p.X, p.Y)
	}
	assert.InDelta(t, math.Sqrt2, sum/4, 1e-12)

	// Returned parameters describe the applied transform
	assert.InDelta(t, -60, n.Tx, 1e-12)
	assert.InDelta(t, -70, n.Ty, 1e-12)
	assert.Greater(t, n.Scale, 0.0)
}

func TestNormalizeRoundTrip(t *testing.T) {
	pts := [4]Point{{-3, 7}, {42, -1}, {40, 44}, {-2, 39}}

	norm, n := Normalize(pts)
	for i, p := range norm {
		back := n.Unapply(p)
		assert.InDelta(t, pts[i].X, back.X, 1e-9)
		assert.InDelta(t, pts[i].Y, back.Y, 1e-9)
	}
}

func TestNormalizeDegenerateKeepsUnitScale(t *testing.T) {
	// All points coincide: mean distance is zero, scale must stay 1.0
	p := Point{5, -5}
	pts := [4]Point{p, p, p, p}

	norm, n := Normalize(pts)
	require.Equal(t, 1.0, n.Scale)
	for _, q := range norm {
		assert.InDelta(t, 0, q.X, 1e-12)
		assert.InDelta(t, 0, q.Y, 1e-12)
	}
}
