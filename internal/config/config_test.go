package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should overlay file values on the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nsummary: true\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Summary)
		assert.True(t, cfg.Lock, "unset keys keep their default")
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("Should reject an unknown log level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid log_level")
	})

	t.Run("Should reject malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("lock: [\n"), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("Should report a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestLoadGlobal(t *testing.T) {
	t.Run("Should fall back to defaults without a file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := LoadGlobal()
		require.NoError(t, err)
		assert.Equal(t, GetDefaults(), cfg)
	})

	t.Run("Should read the global file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)

		path, err := GlobalPath()
		require.NoError(t, err)
		cfg := GetDefaults()
		cfg.Lock = false
		require.NoError(t, Save(path, cfg))

		loaded, err := LoadGlobal()
		require.NoError(t, err)
		assert.False(t, loaded.Lock)
		assert.Equal(t, path, loaded.Source)
	})
}

func TestGetDefaults_ReturnsCopy(t *testing.T) {
	a := GetDefaults()
	a.LogLevel = "debug"
	a.Lock = false
	b := GetDefaults()
	assert.Equal(t, "info", b.LogLevel)
	assert.True(t, b.Lock)
}
