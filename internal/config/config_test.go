package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "debug_logging: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging)
	assert.Equal(t, DefaultExportDir, cfg.ExportDir)
	assert.Equal(t, DefaultExportFormat, cfg.ExportFormat)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
export_dir: /tmp/out
export_format: json
workers: 8
postgres_url: postgres://localhost/offerscope
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.ExportDir)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "postgres://localhost/offerscope", cfg.PostgresURL)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("OFFERSCOPE_POSTGRES_URL", "postgres://db:5432/scenarios")

	path := writeConfig(t, "workers: 2\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db:5432/scenarios", cfg.PostgresURL)
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "workers: -1\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "export_format: xml\n"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
