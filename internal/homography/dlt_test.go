package homography

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() geometry.Corners {
	return geometry.NewCorners(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 1, Y: 0},
		geometry.Point{X: 1, Y: 1},
		geometry.Point{X: 0, Y: 1},
	)
}

// TestBuildSystemLayout pins the DLT row layout: x-equations in rows 0-3,
// y-equations in rows 4-7.
func TestBuildSystemLayout(t *testing.T) {
	src := unitSquare()
	dst := geometry.NewCorners(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 2, Y: 0},
		geometry.Point{X: 2, Y: 2},
		geometry.Point{X: 0, Y: 2},
	)

	a, b, ok := buildSystem(src, dst)
	require.True(t, ok)

	// Correspondence 1 is TR: src=(1,0), dst=(2,0)
	assert.Equal(t, [8]float64{1, 0, 1, 0, 0, 0, -2, 0}, a[1])
	assert.Equal(t, 2.0, b[1])
	// Its y-equation sits four rows down
	assert.Equal(t, [8]float64{0, 0, 0, 1, 0, 1, 0, 0}, a[5])
	assert.Equal(t, 0.0, b[5])

	// BR: src=(1,1), dst=(2,2)
	assert.Equal(t, [8]float64{1, 1, 1, 0, 0, 0, -2, -2}, a[2])
	assert.Equal(t, 2.0, b[2])
	assert.Equal(t, [8]float64{0, 0, 0, 1, 1, 1, -2, -2}, a[6])
	assert.Equal(t, 2.0, b[6])
}

// TestBuildSystemRejectsNaN verifies the all-16-coordinate NaN gate.
func TestBuildSystemRejectsNaN(t *testing.T) {
	src := unitSquare()
	dst := unitSquare()
	dst.BL.X = math.NaN()

	_, _, ok := buildSystem(src, dst)
	assert.False(t, ok)

	src2 := unitSquare()
	src2.TL.Y = math.NaN()
	_, _, ok = buildSystem(src2, unitSquare())
	assert.False(t, ok)
}

// TestBuildSystemRejectsInf verifies the per-correspondence Inf gate.
func TestBuildSystemRejectsInf(t *testing.T) {
	for _, sign := range []int{1, -1} {
		src := unitSquare()
		src.TR.X = math.Inf(sign)
		_, _, ok := buildSystem(src, unitSquare())
		assert.False(t, ok)

		dst := unitSquare()
		dst.BR.Y = math.Inf(sign)
		_, _, ok = buildSystem(unitSquare(), dst)
		assert.False(t, ok)
	}
}
