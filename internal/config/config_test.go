package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[database]
connection_string = "libsql://barbell-test.turso.io?authToken=abc"

[log]
level = "debug"
file = "/tmp/barbell.log"
json = true

[tracker]
undo_window = "90s"

[consistency]
default_baseline = 3
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BARBELL_DATABASE_URL", "BARBELL_LOG_LEVEL", "BARBELL_LOG_FILE", "DEV_MODE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "file:"+filepath.Join(dir, "barbell.db"), cfg.DB.ConnectionString)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2*time.Minute, cfg.Tracker.UndoWindow.Duration)
	assert.Equal(t, 4, cfg.Consistency.DefaultBaseline)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "libsql://barbell-test.turso.io?authToken=abc", cfg.DB.ConnectionString)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/barbell.log", cfg.Log.File)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.ToStdout)
	assert.Equal(t, 90*time.Second, cfg.Tracker.UndoWindow.Duration)
	assert.Equal(t, 3, cfg.Consistency.DefaultBaseline)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, "[log]\nlevel = \"warn\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 2*time.Minute, cfg.Tracker.UndoWindow.Duration)
	assert.Equal(t, 4, cfg.Consistency.DefaultBaseline)
}

func TestLoad_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("BARBELL_DATABASE_URL", "file:/tmp/other.db")
	t.Setenv("BARBELL_LOG_LEVEL", "trace")
	t.Setenv("BARBELL_LOG_FILE", "/tmp/other.log")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "file:/tmp/other.db", cfg.DB.ConnectionString)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "/tmp/other.log", cfg.Log.File)
	// Untouched by the environment.
	assert.Equal(t, 3, cfg.Consistency.DefaultBaseline)
}

func TestLoad_DevModeForcesLocalDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("BARBELL_DATABASE_URL", "libsql://prod.turso.io")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, devConnectionString, cfg.DB.ConnectionString)
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeTemp(t, "[database\nconnection_string = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeTemp(t, "[tracker]\nundo_window = \"soon\"\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty connection string", func(c *Config) { c.DB.ConnectionString = "" }, "connection_string"},
		{"zero undo window", func(c *Config) { c.Tracker.UndoWindow.Duration = 0 }, "undo_window"},
		{"baseline too low", func(c *Config) { c.Consistency.DefaultBaseline = 0 }, "default_baseline"},
		{"baseline too high", func(c *Config) { c.Consistency.DefaultBaseline = 8 }, "default_baseline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	b, err := Duration{90 * time.Second}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))
}
