package homography

import "math"

// Matrix3x3 is a homogeneous 2D projective transform in row-major order.
// The DLT parameterization used here fixes M22 at 1, so the matrix is never
// independently rescaled.
type Matrix3x3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// Identity returns the identity transform. It is the shared fallback result
// for every failed estimation; value semantics make ownership a non-issue.
func Identity() Matrix3x3 {
	return Matrix3x3{M00: 1, M11: 1, M22: 1}
}

// Apply maps the point (x, y) through the transform with projective division.
// A zero denominator yields far-off-canvas sentinel coordinates rather than Inf.
func (m Matrix3x3) Apply(x, y float64) (float64, float64) {
	w := m.M20*x + m.M21*y + m.M22
	if w == 0 {
		return -1e9, -1e9
	}
	wx := m.M00*x + m.M01*y + m.M02
	wy := m.M10*x + m.M11*y + m.M12
	return wx / w, wy / w
}

// Mul returns the composition m*o (apply o first, then m).
func (m Matrix3x3) Mul(o Matrix3x3) Matrix3x3 {
	return Matrix3x3{
		M00: m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20,
		M01: m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21,
		M02: m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22,
		M10: m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20,
		M11: m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21,
		M12: m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22,
		M20: m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20,
		M21: m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21,
		M22: m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22,
	}
}

// Flat returns the nine entries row-major (m00..m22).
func (m Matrix3x3) Flat() [9]float64 {
	return [9]float64{m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22}
}

// IsFinite reports whether all nine entries are finite (no NaN/Inf).
func (m Matrix3x3) IsFinite() bool {
	for _, v := range m.Flat() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
