package homography

import (
	"math"

	"github.com/MeKo-Tech/flatten/internal/geometry"
)

// buildSystem assembles the 8x8 DLT coefficient matrix and right-hand side
// for the correspondences src[i] -> dst[i]. Rows 0-3 carry the x-equations,
// rows 4-7 the y-equations, solving for [m00 m01 m02 m10 m11 m12 m20 m21]
// with m22 fixed at 1.
//
// Inputs are rejected (ok=false) before any assembly when a NaN appears in
// any of the 16 coordinates, and per correspondence when a coordinate is
// infinite; the solver is never invoked on invalid input.
func buildSystem(src, dst geometry.Corners) (a [8][8]float64, b [8]float64, ok bool) {
	if src.HasNaN() || dst.HasNaN() {
		return a, b, false
	}

	sp := src.Points()
	dp := dst.Points()
	for i := 0; i < 4; i++ {
		sx, sy := sp[i].X, sp[i].Y
		dx, dy := dp[i].X, dp[i].Y
		if math.IsInf(sx, 0) || math.IsInf(sy, 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
			return a, b, false
		}

		// x-equation: dx = (m00*sx + m01*sy + m02) / (m20*sx + m21*sy + 1)
		a[i][0] = sx
		a[i][1] = sy
		a[i][2] = 1
		a[i][6] = -sx * dx
		a[i][7] = -sy * dx
		b[i] = dx

		// y-equation: dy = (m10*sx + m11*sy + m12) / (m20*sx + m21*sy + 1)
		a[i+4][3] = sx
		a[i+4][4] = sy
		a[i+4][5] = 1
		a[i+4][6] = -sx * dy
		a[i+4][7] = -sy * dy
		b[i+4] = dy
	}

	return a, b, true
}
