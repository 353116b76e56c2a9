package homography

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genConvexQuad generates a square of side 50-200 with each corner jittered
// by at most 10 in either axis. The jitter is small relative to the side, so
// the quadrilateral stays strictly convex and the DLT system well posed.
func genConvexQuad() gopter.Gen {
	jitter := gen.Float64Range(-10, 10)
	return gopter.CombineGens(
		gen.Float64Range(50, 200),
		jitter, jitter, jitter, jitter, jitter, jitter, jitter, jitter,
	).Map(func(vals []interface{}) geometry.Corners {
		s := vals[0].(float64)
		j := func(i int) float64 { return vals[i].(float64) }
		return geometry.NewCorners(
			geometry.Point{X: j(1), Y: j(2)},
			geometry.Point{X: s + j(3), Y: j(4)},
			geometry.Point{X: s + j(5), Y: s + j(6)},
			geometry.Point{X: j(7), Y: s + j(8)},
		)
	})
}

// genAnyQuad generates unconstrained corner sets, degenerate ones included.
func genAnyQuad() gopter.Gen {
	coord := gen.Float64Range(-1000, 1000)
	return gopter.CombineGens(
		coord, coord, coord, coord, coord, coord, coord, coord,
	).Map(func(vals []interface{}) geometry.Corners {
		v := func(i int) float64 { return vals[i].(float64) }
		return geometry.NewCorners(
			geometry.Point{X: v(0), Y: v(1)},
			geometry.Point{X: v(2), Y: v(3)},
			geometry.Point{X: v(4), Y: v(5)},
			geometry.Point{X: v(6), Y: v(7)},
		)
	})
}

// TestEstimate_MapsCornersExactly: for convex quad pairs the estimated
// matrix reproduces each corner correspondence.
func TestEstimate_MapsCornersExactly(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("estimated homography maps src corners to dst corners", prop.ForAll(
		func(src, dst geometry.Corners) bool {
			m, ok := EstimateChecked(src, dst)
			if !ok {
				return false
			}
			sp := src.Points()
			dp := dst.Points()
			for i := range sp {
				gx, gy := m.Apply(sp[i].X, sp[i].Y)
				if math.Abs(gx-dp[i].X) > 1e-4 || math.Abs(gy-dp[i].Y) > 1e-4 {
					return false
				}
			}
			return true
		},
		genConvexQuad(),
		genConvexQuad(),
	))

	properties.TestingRun(t)
}

// TestEstimate_AlwaysFinite: arbitrary inputs, including degenerate
// quadrilaterals, never yield NaN or Inf in the returned matrix.
func TestEstimate_AlwaysFinite(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result matrix is always fully finite", prop.ForAll(
		func(src, dst geometry.Corners) bool {
			return Estimate(src, dst).IsFinite()
		},
		genAnyQuad(),
		genAnyQuad(),
	))

	properties.TestingRun(t)
}

// TestEstimateNormalized_AgreesWithPlain: the opt-in normalization stage
// changes conditioning, not the estimated mapping.
func TestEstimateNormalized_AgreesWithPlain(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("normalized and plain estimates map corners alike", prop.ForAll(
		func(src, dst geometry.Corners) bool {
			plain, okPlain := EstimateChecked(src, dst)
			normd, okNorm := EstimateNormalizedChecked(src, dst)
			if !okPlain || !okNorm {
				return false
			}
			for _, p := range src.Points() {
				px, py := plain.Apply(p.X, p.Y)
				nx, ny := normd.Apply(p.X, p.Y)
				if math.Abs(px-nx) > 1e-4 || math.Abs(py-ny) > 1e-4 {
					return false
				}
			}
			return true
		},
		genConvexQuad(),
		genConvexQuad(),
	))

	properties.TestingRun(t)
}
