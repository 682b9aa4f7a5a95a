package psu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, ProjectConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `out_dir: dist
strict: true
log_level: debug
watch:
  debounce_ms: 250
  clear_screen: true
`)

	config, err := LoadProjectConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "dist", config.OutDir)
	assert.True(t, config.Strict)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 250, config.Watch.DebounceMs)
	assert.True(t, config.Watch.ClearScreen)
}

func TestLoadProjectConfig_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "out_dir: dist\nthemes: dark\n")

	_, err := LoadProjectConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigDecode)
}

func TestLoadProjectConfig_EmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	config, err := LoadProjectConfig(path)

	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, config)
}

func TestLoadProjectConfig_MissingFile(t *testing.T) {
	_, err := LoadProjectConfig(filepath.Join(t.TempDir(), ProjectConfigName))

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigRead)
}

func TestFindProjectConfig(t *testing.T) {
	t.Run("config beside script", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "strict: true\n")

		config, err := FindProjectConfig(filepath.Join(dir, "site.psu"))

		require.NoError(t, err)
		assert.True(t, config.Strict)
	})

	t.Run("no config file", func(t *testing.T) {
		config, err := FindProjectConfig(filepath.Join(t.TempDir(), "site.psu"))

		require.NoError(t, err)
		assert.Equal(t, &ProjectConfig{}, config)
	})
}
