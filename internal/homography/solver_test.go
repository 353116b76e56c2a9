package homography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve8x8Identity solves against the identity coefficient matrix.
func TestSolve8x8Identity(t *testing.T) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 8; i++ {
		a[i][i] = 1
		b[i] = float64(i + 1)
	}

	x, ok := solve8x8(a, b)
	require.True(t, ok)
	for i, v := range x {
		assert.InDelta(t, float64(i+1), v, 1e-12, "x[%d]", i)
	}
}

// TestSolve8x8NeedsPivoting uses a permutation matrix so every pivot must be
// found below the diagonal.
func TestSolve8x8NeedsPivoting(t *testing.T) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 8; i++ {
		a[i][7-i] = 2
		b[i] = float64(7 - i)
	}

	x, ok := solve8x8(a, b)
	require.True(t, ok)
	for i, v := range x {
		assert.InDelta(t, float64(i)/2, v, 1e-12, "x[%d]", i)
	}
}

// TestSolve8x8Singular verifies that a rank-deficient system fails outright.
func TestSolve8x8Singular(t *testing.T) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			a[i][j] = 1 // all rows identical
		}
		b[i] = 1
	}

	_, ok := solve8x8(a, b)
	assert.False(t, ok)
}

// TestSolve8x8TinyPivot verifies the epsilon threshold: a pivot column whose
// best candidate is below 1e-10 counts as singular.
func TestSolve8x8TinyPivot(t *testing.T) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 8; i++ {
		a[i][i] = 1
		b[i] = 1
	}
	for i := 0; i < 8; i++ {
		a[i][0] = 0
	}
	a[0][0] = 1e-12 // below pivotEpsilon

	_, ok := solve8x8(a, b)
	assert.False(t, ok)
}

// TestSolve8x8Dense checks a dense well-conditioned system by residual.
func TestSolve8x8Dense(t *testing.T) {
	a := [8][8]float64{}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			a[i][j] = float64((i*3+j*5)%7) - 3
		}
		a[i][i] += 10 // diagonally dominant
	}
	b := [8]float64{1, -2, 3, -4, 5, -6, 7, -8}

	x, ok := solve8x8(a, b)
	require.True(t, ok)
	for i := 0; i < 8; i++ {
		var r float64
		for j := 0; j < 8; j++ {
			r += a[i][j] * x[j]
		}
		assert.InDelta(t, b[i], r, 1e-9, "residual row %d", i)
	}
}
