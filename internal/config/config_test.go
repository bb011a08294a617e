package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file into a temp directory and returns
// its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDefault verifies the built-in defaults: gaming excluded, single
// scale mode, no paths.
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Source)
	assert.Empty(t, cfg.Destination)
	assert.Equal(t, []string{"gaming"}, cfg.Exclude)
	assert.Equal(t, "single", cfg.ScaleMode)
}

// TestLoad_FullFile verifies that all fields are read from the file.
func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
source: icons/realistic
destination: Assets.xcassets/ActivityIcons
exclude:
  - gaming
  - draft
scaleMode: placeholders
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "icons/realistic", cfg.Source)
	assert.Equal(t, "Assets.xcassets/ActivityIcons", cfg.Destination)
	assert.Equal(t, []string{"gaming", "draft"}, cfg.Exclude)
	assert.Equal(t, "placeholders", cfg.ScaleMode)
}

// TestLoad_PartialFile verifies that fields absent from the file keep
// their defaults.
func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, "source: icons\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "icons", cfg.Source)
	assert.Equal(t, []string{"gaming"}, cfg.Exclude, "default exclusion survives partial config")
	assert.Equal(t, "single", cfg.ScaleMode)
}

// TestLoad_EmptyExcludeClearsDefault verifies that an explicit empty
// exclusion list overrides the built-in one.
func TestLoad_EmptyExcludeClearsDefault(t *testing.T) {
	path := writeConfig(t, "exclude: []\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
}

// TestLoad_MissingFile verifies the two lookup modes: the implicit
// working-directory lookup tolerates a missing file, an explicit
// --config path does not.
func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), DefaultFileName)

	t.Run("implicit lookup yields defaults", func(t *testing.T) {
		cfg, err := Load(missing, false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit path errors", func(t *testing.T) {
		_, err := Load(missing, true)
		assert.Error(t, err)
	})
}

// TestLoad_MalformedFile verifies that YAML syntax errors and invalid
// scale modes are reported.
func TestLoad_MalformedFile(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "source: [unclosed\n")
		_, err := Load(path, false)
		assert.Error(t, err)
	})

	t.Run("bad scale mode", func(t *testing.T) {
		path := writeConfig(t, "scaleMode: retina\n")
		_, err := Load(path, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "scaleMode")
	})
}
