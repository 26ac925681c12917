package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("LOG_ADD_SOURCE", "")
		t.Setenv("SCENARIO_PATH", "")
		t.Setenv("METRICS_TEXTFILE", "")

		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.AppEnv)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.False(t, cfg.AddSource)
		assert.Empty(t, cfg.ScenarioPath)
		assert.Empty(t, cfg.MetricsTextfile)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		unsetenv(t, "LOG_LEVEL", "LOG_ADD_SOURCE", "SCENARIO_PATH")

		path := filepath.Join(t.TempDir(), ".env")
		content := "APP_ENV=staging\nLOG_LEVEL=debug\nLOG_ADD_SOURCE=true\nSCENARIO_PATH=demo.yaml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.AppEnv, "process env wins over the file")
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.AddSource)
		assert.Equal(t, "demo.yaml", cfg.ScenarioPath)
	})

	t.Run("bad bool falls back to default", func(t *testing.T) {
		t.Setenv("LOG_ADD_SOURCE", "maybe")

		cfg, err := LoadFile("")
		require.NoError(t, err)
		assert.False(t, cfg.AddSource)
	})
}

// unsetenv clears keys for the duration of the test; godotenv only fills
// variables that are absent, so an empty value is not enough.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
