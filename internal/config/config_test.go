package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "daybook.db", cfg.DatabaseFile)
	assert.Equal(t, 60, cfg.TickSeconds)
	assert.Equal(t, 60*time.Second, cfg.TickInterval())
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	content := "data_dir: /tmp/daybook-test\ndatabase_file: planner.db\ntick_seconds: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/daybook-test", cfg.DataDir)
	assert.Equal(t, "planner.db", cfg.DatabaseFile)
	assert.Equal(t, 30, cfg.TickSeconds)
	assert.Equal(t, filepath.Join("/tmp/daybook-test", "planner.db"), cfg.DatabasePath())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: 120\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.TickSeconds)
	assert.Equal(t, "daybook.db", cfg.DatabaseFile)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: -5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: [oops\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultDataDirPerOS(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(home, "Library", "Application Support", "daybook"),
		defaultDataDirForOS("darwin"))

	t.Setenv("XDG_DATA_HOME", "/custom/xdg")
	assert.Equal(t, filepath.Join("/custom/xdg", "daybook"), defaultDataDirForOS("linux"))

	t.Setenv("XDG_DATA_HOME", "")
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "daybook"),
		defaultDataDirForOS("linux"))
}
