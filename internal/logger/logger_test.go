package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wegbereiter/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(&config.Config{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.NotPanics(t, func() { l.DPanic("ignored") })
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New(&config.Config{Env: "production", Log: config.Log{File: path, Level: "info"}})
	require.NoError(t, err)

	l.Info("hello")
	l.Debug("hidden")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.NotContains(t, string(data), "hidden")
	assert.NotPanics(t, func() { l.DPanic("logged only") })
}

func TestNew_DevelopmentPanicsOnDPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	l, err := New(&config.Config{Env: "local", Log: config.Log{File: path}})
	require.NoError(t, err)

	assert.Panics(t, func() { l.DPanic("broken invariant") })
}

func TestNew_DefaultConfigDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Log.File = filepath.Join(dir, "app.log")

	l, err := New(cfg)
	require.NoError(t, err)
	assert.NotPanics(t, func() { l.DPanic("logged only") })
}

func TestNew_BadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	_, err := New(&config.Config{Log: config.Log{File: path, Level: "loud"}})
	assert.Error(t, err)
}
