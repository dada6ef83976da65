package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, 380, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.False(t, cfg.Control.Enabled)
	assert.Equal(t, "127.0.0.1", cfg.Control.Host)
	assert.Equal(t, 47811, cfg.Control.Port)
}

func TestParse_EmbeddedDefaultFile(t *testing.T) {
	data, err := os.ReadFile("config.yaml")
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, cfg.Window.StartHidden)
	assert.True(t, cfg.Logging.FileEnabled)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "window: [",
		"bad level":       "logging:\n  level: verbose\n",
		"public host":     "control:\n  host: 0.0.0.0\n",
		"hostname":        "control:\n  host: example.com\n",
		"port range":      "control:\n  port: 70000\n",
		"negative window": "window:\n  width: -1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParse_LoopbackHosts(t *testing.T) {
	for _, host := range []string{"localhost", "127.0.0.1", "::1"} {
		_, err := Parse([]byte("control:\n  host: \"" + host + "\"\n"))
		assert.NoError(t, err, host)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnsureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	created, err := EnsureFile(path, []byte("window:\n  width: 400\n"))
	require.NoError(t, err)
	assert.True(t, created)

	// 已存在时不覆盖
	created, err = EnsureFile(path, []byte("window:\n  width: 999\n"))
	require.NoError(t, err)
	assert.False(t, created)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Window.Width)
}

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	cw, err := NewConfigWatcher(path, slog.Default())
	require.NoError(t, err)
	defer cw.Close()

	var reloaded atomic.Int32
	cw.AddReloadCallback(func(c *Config) {
		if c.Logging.Level == "debug" {
			reloaded.Add(1)
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	require.Eventually(t, func() bool { return reloaded.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "debug", cw.GetConfig().Logging.Level)
}

func TestConfigWatcher_KeepsOldConfigOnInvalidWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cw, err := NewConfigWatcher(path, slog.Default())
	require.NoError(t, err)
	defer cw.Close()

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: nope\n"), 0644))
	assert.Error(t, cw.reloadConfig())
	assert.Equal(t, "warn", cw.GetConfig().Logging.Level)
}
