package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "models", cfg.Storage.Bucket)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "reports", cfg.Report.UploadPrefix)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "exports")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "exports", cfg.Storage.Bucket)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REPORT_FORMAT=json\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("REPORT_FORMAT") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Report.Format)
}
