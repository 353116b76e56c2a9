package homography

import "math"

// pivotEpsilon is the minimum acceptable pivot magnitude; anything below it
// marks the system as singular.
const pivotEpsilon = 1e-10

// solve8x8 solves the dense 8x8 system A*x = b using Gaussian elimination
// with partial pivoting on an augmented 8x9 matrix. It returns a fully
// finite solution vector or fails; near-singularity anywhere aborts the
// whole computation, never a partial answer.
func solve8x8(a [8][8]float64, b [8]float64) ([8]float64, bool) {
	// Augmented matrix [A|b]
	var aug [8][9]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			aug[i][j] = a[i][j]
		}
		aug[i][8] = b[i]
	}

	// Forward elimination with partial pivoting
	for i := 0; i < 8; i++ {
		pivotRow, ok := findPivotRow(&aug, i)
		if !ok {
			return [8]float64{}, false
		}
		if pivotRow != i {
			aug[i], aug[pivotRow] = aug[pivotRow], aug[i]
		}
		eliminateBelow(&aug, i)
	}

	return backSubstitute(&aug)
}

// findPivotRow scans rows col..7 in the given column for the entry of
// maximum magnitude. It fails when the best candidate is below pivotEpsilon.
func findPivotRow(aug *[8][9]float64, col int) (int, bool) {
	pivotRow := col
	maxAbs := math.Abs(aug[col][col])
	for r := col + 1; r < 8; r++ {
		if v := math.Abs(aug[r][col]); v > maxAbs {
			maxAbs = v
			pivotRow = r
		}
	}
	if maxAbs < pivotEpsilon {
		return -1, false
	}
	return pivotRow, true
}

// eliminateBelow zeroes column col in all rows below the pivot row.
func eliminateBelow(aug *[8][9]float64, col int) {
	for r := col + 1; r < 8; r++ {
		factor := aug[r][col] / aug[col][col]
		for c := col; c < 9; c++ {
			aug[r][c] -= factor * aug[col][c]
		}
	}
}

// backSubstitute resolves the unknowns from row 7 up to row 0. Each unknown
// is checked immediately: a zero pivot or a non-finite value fails the solve.
func backSubstitute(aug *[8][9]float64) ([8]float64, bool) {
	var x [8]float64
	for i := 7; i >= 0; i-- {
		if math.Abs(aug[i][i]) < pivotEpsilon {
			return [8]float64{}, false
		}
		x[i] = aug[i][8]
		for j := i + 1; j < 8; j++ {
			x[i] -= aug[i][j] * x[j]
		}
		x[i] /= aug[i][i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return [8]float64{}, false
		}
	}
	return x, true
}
