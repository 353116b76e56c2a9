package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLoader returns a loader with an isolated viper instance so tests do
// not leak state through the global viper.
func newTestLoader() *Loader {
	return &Loader{v: viper.New()}
}

func TestLoadDefaults(t *testing.T) {
	loader := newTestLoader()

	cfg, err := loader.Load()
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
	assert.Equal(t, defaults.Output.Format, cfg.Output.Format)
	assert.Equal(t, defaults.Server.Port, cfg.Server.Port)
	assert.False(t, cfg.Estimator.Normalize)
}

func TestLoadWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flatten.yaml")
	content := `
log_level: debug
estimator:
  normalize: true
output:
  format: json
  precision: 9
server:
  port: 9999
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := newTestLoader()
	cfg, err := loader.LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Estimator.Normalize)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 9, cfg.Output.Precision)
	assert.Equal(t, 9999, cfg.Server.Port)
	// Untouched values fall back to defaults
	assert.Equal(t, DefaultConfig().Server.Host, cfg.Server.Host)
}

func TestLoadWithFileMissing(t *testing.T) {
	loader := newTestLoader()
	_, err := loader.LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWithFileInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flatten.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	loader := newTestLoader()
	_, err := loader.LoadWithFile(path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestGenerateDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated.yaml")

	require.NoError(t, GenerateDefaultConfigFile(path))

	loader := newTestLoader()
	cfg, err := loader.LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestGetConfigSearchPaths(t *testing.T) {
	paths := GetConfigSearchPaths()
	assert.Contains(t, paths, ".")
	assert.Contains(t, paths, "/etc/flatten")
}
