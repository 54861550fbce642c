package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Progress.Interval)
	assert.InDelta(t, 5.0, cfg.Progress.MaxStep, 1e-9)
	assert.False(t, cfg.Progress.Plain)
	assert.Equal(t, time.Second, cfg.Demo.Pause)
	assert.Equal(t, "/tmp/example", cfg.Demo.Workdir)
	assert.Equal(t, "data.csv", cfg.Demo.InputFile)
	assert.Equal(t, "user@example.com", cfg.Demo.Email)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `log:
  level: debug
  format: json
progress:
  interval: 20ms
  max_step: 10
  plain: true
demo:
  pause: 0s
  email: ops@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 20*time.Millisecond, cfg.Progress.Interval)
	assert.InDelta(t, 10.0, cfg.Progress.MaxStep, 1e-9)
	assert.True(t, cfg.Progress.Plain)
	assert.Equal(t, time.Duration(0), cfg.Demo.Pause)
	assert.Equal(t, "ops@example.com", cfg.Demo.Email)
	assert.Equal(t, "data.csv", cfg.Demo.InputFile)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cybrconsole.yaml"), []byte("demo:\n  workdir: /srv/work\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/work", cfg.Demo.Workdir)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CYBR_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  interval: 0s\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "progress.interval")
}
