package testutil

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.True(t, FileExists(filepath.Join(root, "go.mod")))
	assert.True(t, DirExists(filepath.Join(root, "internal")))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))
	assert.True(t, DirExists(dir))

	// Idempotent
	require.NoError(t, EnsureDir(dir))
}

func TestFixtures(t *testing.T) {
	assert.False(t, UnitSquare().HasNaN())
	assert.False(t, SkewedQuad().HasNaN())
	assert.False(t, CollinearQuad().HasNaN())

	assert.True(t, NaNQuad().HasNaN())

	inf := InfQuad()
	assert.True(t, math.IsInf(inf.TR.Y, 1))
	assert.False(t, inf.HasNaN())
}
