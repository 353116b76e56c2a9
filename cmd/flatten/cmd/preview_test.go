package cmd

import (
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/flatten/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	out, err := executeCommand("preview",
		"--src", quadFlag(testutil.UnitSquare()),
		"--dst", quadFlag(testutil.SkewedQuad()),
		"--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.True(t, testutil.FileExists(path))
}

func TestPreviewCommandCustomColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	_, err := executeCommand("preview",
		"--src", quadFlag(testutil.UnitSquare()),
		"--dst", quadFlag(testutil.Square(10, 10, 50)),
		"--out", path,
		"--source-color", "#0000FF",
		"--dest-color", "#FFFF00",
		"--grid-steps", "4")
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(path))
}

func TestPreviewCommandMissingOut(t *testing.T) {
	// Flag values persist across Execute calls, so clear out explicitly.
	_, err := executeCommand("preview",
		"--src", quadFlag(testutil.UnitSquare()),
		"--dst", quadFlag(testutil.Square(0, 0, 2)),
		"--out", "")
	assert.Error(t, err)
}

func TestPreviewCommandInvalidColor(t *testing.T) {
	_, err := executeCommand("preview",
		"--src", quadFlag(testutil.UnitSquare()),
		"--dst", quadFlag(testutil.Square(0, 0, 2)),
		"--out", filepath.Join(t.TempDir(), "p.png"),
		"--source-color", "red")
	assert.Error(t, err)
}
