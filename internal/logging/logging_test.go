package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiolite/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestSetup_WritesFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, h := Setup(config.LoggingConfig{Level: "info", FileEnabled: true, MaxSizeMB: 1}, path)
	var console bytes.Buffer
	h.shared.console = &console

	logger.With("session", "abc").Info("托盘就绪", "id", "main")
	logger.Debug("不会输出")
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] 托盘就绪 session=abc id=main")
	assert.NotContains(t, string(data), "不会输出")
	assert.Equal(t, string(data), console.String())
}

func TestHandler_SetLevel(t *testing.T) {
	logger, h := Setup(config.LoggingConfig{Level: "warn"}, "")
	var console bytes.Buffer
	h.shared.console = &console

	logger.Info("hidden")
	h.SetLevel("debug")
	logger.Debug("visible")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "[DEBUG] visible")
	assert.Equal(t, slog.LevelDebug, h.Level())
}

func TestHandler_WithGroup(t *testing.T) {
	logger, h := Setup(config.LoggingConfig{Level: "info"}, "")
	var console bytes.Buffer
	h.shared.console = &console

	logger.WithGroup("tray").Info("x", "id", "main")

	assert.Contains(t, console.String(), "x tray.id=main")
}

func TestHandler_ForwardsWarningsToEmitter(t *testing.T) {
	logger, h := Setup(config.LoggingConfig{Level: "debug", EmitToFront: true}, "")
	h.shared.console = &bytes.Buffer{}

	var (
		mu      sync.Mutex
		batches [][]LogEntry
	)
	em := h.Emitter()
	require.NotNil(t, em)
	em.emit = func(_ context.Context, name string, data ...interface{}) {
		assert.Equal(t, EventLog, name)
		mu.Lock()
		batches = append(batches, data[0].([]LogEntry))
		mu.Unlock()
	}
	em.Start(context.Background())

	logger.Info("info 不推送")
	logger.Warn("托盘标题同步失败")
	logger.Error("boom")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		n := 0
		for _, b := range batches {
			n += len(b)
		}
		return n == 2
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, h.Close())
	assert.False(t, em.IsEnabled())

	mu.Lock()
	defer mu.Unlock()
	var levels []string
	for _, b := range batches {
		for _, e := range b {
			levels = append(levels, e.Level)
		}
	}
	assert.Equal(t, []string{"WARN", "ERROR"}, levels)
}

func TestEventEmitter_EmitBeforeStartIsDropped(t *testing.T) {
	em := NewEventEmitter()
	called := false
	em.emit = func(context.Context, string, ...interface{}) { called = true }

	em.Emit(LogEntry{Level: "WARN"})
	em.Stop()

	assert.False(t, called)
}
