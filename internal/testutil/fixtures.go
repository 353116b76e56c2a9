package testutil

import (
	"math"

	"github.com/MeKo-Tech/flatten/internal/geometry"
)

// UnitSquare returns the corner set of the unit square at the origin.
func UnitSquare() geometry.Corners {
	return Square(0, 0, 1)
}

// Square returns an axis-aligned square with the given top-left corner and side.
func Square(x, y, side float64) geometry.Corners {
	return geometry.NewCorners(
		geometry.Point{X: x, Y: y},
		geometry.Point{X: x + side, Y: y},
		geometry.Point{X: x + side, Y: y + side},
		geometry.Point{X: x, Y: y + side},
	)
}

// SkewedQuad returns a convex non-rectangular quad, a typical perspective
// target.
func SkewedQuad() geometry.Corners {
	return geometry.NewCorners(
		geometry.Point{X: 10, Y: 20},
		geometry.Point{X: 210, Y: 5},
		geometry.Point{X: 230, Y: 180},
		geometry.Point{X: 5, Y: 160},
	)
}

// CollinearQuad returns four corners on a single line, which makes the
// homography system singular.
func CollinearQuad() geometry.Corners {
	return geometry.NewCorners(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 1, Y: 1},
		geometry.Point{X: 2, Y: 2},
		geometry.Point{X: 3, Y: 3},
	)
}

// NaNQuad returns a corner set with one NaN coordinate.
func NaNQuad() geometry.Corners {
	c := UnitSquare()
	c.BR.X = math.NaN()
	return c
}

// InfQuad returns a corner set with one infinite coordinate.
func InfQuad() geometry.Corners {
	c := UnitSquare()
	c.TR.Y = math.Inf(1)
	return c
}
