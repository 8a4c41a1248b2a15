package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers: 3
logging:
  level: debug
sims:
  seating:
    mode: visible
  cubes:
    dims: "4"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.View.Scale, "unset keys keep their defaults")
	assert.Equal(t, map[string]string{"mode": "visible", "workers": "3"}, cfg.SimOptions("seating", nil))
	assert.Equal(t, map[string]string{"dims": "5", "workers": "1"}, cfg.SimOptions("cubes", map[string]string{"dims": "5", "workers": "1"}))
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: [1"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("view:\n  scale: 0\n"), 0o644))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "view.scale")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("workers and logging", func(t *testing.T) {
		t.Setenv("CELLSIM_WORKERS", "6")
		t.Setenv("CELLSIM_LOG_LEVEL", "warn")
		t.Setenv("CELLSIM_LOG_JSON", "true")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Workers)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.True(t, cfg.Logging.JSON)
	})

	t.Run("invalid workers", func(t *testing.T) {
		t.Setenv("CELLSIM_WORKERS", "many")
		_, err := Load("")
		assert.ErrorContains(t, err, "CELLSIM_WORKERS")
	})
}
