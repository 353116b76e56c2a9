package homography

import (
	"math"

	"github.com/MeKo-Tech/flatten/internal/geometry"
)

// maxSolutionMagnitude is the instability guard on the eight solved entries.
const maxSolutionMagnitude = 1e6

// Guard names used for debug logging and server diagnostics. Every guard
// collapses to the same observable outcome: the identity fallback.
const (
	guardNone              = ""
	guardNonFiniteInput    = "non_finite_input"
	guardSingularSystem    = "singular_system"
	guardUnstableSolution  = "unstable_solution"
	guardNonFiniteMatrix   = "non_finite_matrix"
	guardDegenerateCompose = "degenerate_composition"
)

// Estimate computes the 3x3 homography mapping src onto dst from the four
// corner correspondences. It never fails from the caller's perspective: any
// validation or solver failure returns the identity transform, so the result
// is always a usable, fully finite matrix. Which guard tripped is visible
// only through debug logging.
func Estimate(src, dst geometry.Corners) Matrix3x3 {
	m, _ := EstimateChecked(src, dst)
	return m
}

// EstimateChecked is Estimate plus a flag reporting whether a real solution
// was produced (false means the identity fallback was served). The matrix is
// valid either way.
func EstimateChecked(src, dst geometry.Corners) (Matrix3x3, bool) {
	m, guard := estimate(src, dst)
	if guard != guardNone {
		logFallback(guard, src, dst)
		return Identity(), false
	}
	logResult(src, dst, m)
	return m, true
}

// estimate runs the strictly linear pipeline: input validation, equation
// assembly, solve, solution guards, matrix assembly, defensive re-check.
func estimate(src, dst geometry.Corners) (Matrix3x3, string) {
	a, b, ok := buildSystem(src, dst)
	if !ok {
		return Identity(), guardNonFiniteInput
	}

	x, ok := solve8x8(a, b)
	if !ok {
		return Identity(), guardSingularSystem
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxSolutionMagnitude {
			return Identity(), guardUnstableSolution
		}
	}

	m := Matrix3x3{
		M00: x[0], M01: x[1], M02: x[2],
		M10: x[3], M11: x[4], M12: x[5],
		M20: x[6], M21: x[7], M22: 1,
	}

	// Redundant with the solution guard above on purpose: protects against
	// assembly mistakes, not solver output.
	if !m.IsFinite() {
		return Identity(), guardNonFiniteMatrix
	}

	return m, guardNone
}

// EstimateNormalized estimates the homography on Hartley-normalized
// coordinates (centroid removed, mean distance sqrt(2)) and folds the
// denormalizing similarities back into the result. Normalization changes the
// conditioning of the linear system, not the transform it describes, so this
// is an explicit opt-in stage for poorly scaled or off-origin inputs rather
// than part of Estimate. The fallback discipline is identical.
func EstimateNormalized(src, dst geometry.Corners) Matrix3x3 {
	m, _ := EstimateNormalizedChecked(src, dst)
	return m
}

// EstimateNormalizedChecked is EstimateNormalized plus the fallback flag.
func EstimateNormalizedChecked(src, dst geometry.Corners) (Matrix3x3, bool) {
	if src.HasNaN() || dst.HasNaN() {
		logFallback(guardNonFiniteInput, src, dst)
		return Identity(), false
	}

	srcNorm, sn := geometry.Normalize(src.Points())
	dstNorm, dn := geometry.Normalize(dst.Points())

	hn, guard := estimate(cornersFromPoints(srcNorm), cornersFromPoints(dstNorm))
	if guard != guardNone {
		logFallback(guard, src, dst)
		return Identity(), false
	}

	// H = inv(Td) * Hn * Ts, renormalized so m22 stays 1.
	h := inverseSimilarity(dn).Mul(hn).Mul(similarity(sn))
	if h.M22 == 0 || math.IsNaN(h.M22) || math.IsInf(h.M22, 0) {
		logFallback(guardDegenerateCompose, src, dst)
		return Identity(), false
	}
	w := h.M22
	h = Matrix3x3{
		M00: h.M00 / w, M01: h.M01 / w, M02: h.M02 / w,
		M10: h.M10 / w, M11: h.M11 / w, M12: h.M12 / w,
		M20: h.M20 / w, M21: h.M21 / w, M22: 1,
	}
	if !h.IsFinite() {
		logFallback(guardNonFiniteMatrix, src, dst)
		return Identity(), false
	}

	logResult(src, dst, h)
	return h, true
}

// similarity expresses a Normalization as a 3x3 transform:
// p' = (p + t) * s.
func similarity(n geometry.Normalization) Matrix3x3 {
	return Matrix3x3{
		M00: n.Scale, M02: n.Scale * n.Tx,
		M11: n.Scale, M12: n.Scale * n.Ty,
		M22: 1,
	}
}

// inverseSimilarity expresses the Unapply direction: p = p'/s - t.
func inverseSimilarity(n geometry.Normalization) Matrix3x3 {
	return Matrix3x3{
		M00: 1 / n.Scale, M02: -n.Tx,
		M11: 1 / n.Scale, M12: -n.Ty,
		M22: 1,
	}
}

func cornersFromPoints(pts [4]geometry.Point) geometry.Corners {
	return geometry.Corners{TL: pts[0], TR: pts[1], BR: pts[2], BL: pts[3]}
}
