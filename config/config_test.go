package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "pwhl", cfg.ClientCode)
	require.Equal(t, 3, cfg.MaxRetries)
	require.Equal(t, 100*time.Millisecond, cfg.RateLimit)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "database_path: /tmp/test.db\nrate_limit: 250ms\nmax_retries: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	require.Equal(t, 250*time.Millisecond, cfg.RateLimit)
	require.Equal(t, 5, cfg.MaxRetries)
	// untouched keys keep their defaults
	require.Equal(t, "pwhl", cfg.ClientCode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
