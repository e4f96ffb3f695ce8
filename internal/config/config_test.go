package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvDataFile, EnvJSONLogs, EnvLogLevel, EnvDebug} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "data.txt", c.DataFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.JSONLogs)
	assert.Equal(t, float32(400), c.Window.Width)
	assert.Equal(t, float32(300), c.Window.Height)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	defer chdir(t, t.TempDir())()

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile(DefaultFile, []byte("data_file: people.txt\nwindow:\n  width: 640\n  height: 480\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "people.txt", c.DataFile)
	assert.Equal(t, float32(640), c.Window.Width)
	assert.Equal(t, float32(480), c.Window.Height)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_ExplicitFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\njson_logs: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.JSONLogs)
	assert.Equal(t, "data.txt", c.DataFile)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from-env-config.txt\n"), 0o644))
	t.Setenv(EnvConfig, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env-config.txt", c.DataFile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: file.txt\nlog_level: warn\n"), 0o644))
	t.Setenv(EnvDataFile, "env.txt")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvJSONLogs, "true")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", c.DataFile)
	assert.Equal(t, "error", c.LogLevel)
	assert.True(t, c.JSONLogs)
}

func TestApplyEnv_DebugFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebug, "1")

	c := Default()
	c.ApplyEnv()
	assert.Equal(t, "debug", c.LogLevel)

	t.Setenv(EnvLogLevel, "warn")
	c = Default()
	c.ApplyEnv()
	assert.Equal(t, "warn", c.LogLevel, "LOG_LEVEL takes precedence over DEBUG")
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	c.DataFile = "  "
	assert.Error(t, c.Validate())

	c = Default()
	c.Window.Width = 0
	assert.Error(t, c.Validate())

	c = Default()
	c.LogLevel = "chatty"
	assert.Error(t, c.Validate())
}

func TestLoggerOptions(t *testing.T) {
	c := Default()
	c.LogLevel = "debug"
	c.JSONLogs = true

	opts := c.LoggerOptions()
	assert.Equal(t, "debug", opts.Level)
	assert.True(t, opts.JSON)
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	defer chdir(t, t.TempDir())()
	t.Setenv(EnvLogLevel, "loud")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "loud", c.LogLevel)
	assert.Error(t, c.Validate())

	c.LogLevel = "debug"
	assert.NoError(t, c.Validate())
}
