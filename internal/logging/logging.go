// Package logging 结构化日志：控制台 + 轮转文件，WARN/ERROR 可推送到前端
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"radiolite/config"
)

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup 根据配置创建日志器，defaultPath 在配置未指定文件路径时使用
func Setup(cfg config.LoggingConfig, defaultPath string) (*slog.Logger, *Handler) {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	h := &Handler{
		shared: &shared{
			level:   level,
			console: os.Stdout,
			pid:     os.Getpid(),
		},
	}

	if cfg.FileEnabled {
		path := cfg.FilePath
		if path == "" {
			path = defaultPath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Printf("警告：无法创建日志目录: %v\n", err)
		} else {
			h.shared.file = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Compress,
			}
		}
	}

	if cfg.EmitToFront {
		h.shared.emitter = NewEventEmitter()
	}

	return slog.New(h), h
}

type shared struct {
	mu      sync.Mutex
	level   *slog.LevelVar
	console io.Writer
	file    io.WriteCloser
	emitter *EventEmitter
	pid     int
}

// Handler 简化的日志处理器
// 输出格式：[时间] [PID:n] [LEVEL] message k=v ...
type Handler struct {
	shared *shared
	attrs  []slog.Attr
	group  string
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.shared.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value)
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	message := b.String()
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	level := levelName(r.Level)
	line := fmt.Sprintf("[%s] [PID:%d] [%s] %s\n", ts.Format("2006-01-02 15:04:05.000"), h.shared.pid, level, message)

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()

	if h.shared.file != nil {
		if _, err := io.WriteString(h.shared.file, line); err != nil {
			return err
		}
	}
	if h.shared.console != nil {
		io.WriteString(h.shared.console, line)
	}
	if h.shared.emitter != nil && r.Level >= slog.LevelWarn {
		h.shared.emitter.Emit(LogEntry{Time: ts.Format(time.RFC3339), Level: level, Message: message})
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		next.group += "." + name
	} else {
		next.group = name
	}
	return &next
}

// SetLevel 动态调整日志级别（配置热重载时调用）
func (h *Handler) SetLevel(level string) {
	h.shared.level.Set(ParseLevel(level))
}

// Level 当前日志级别
func (h *Handler) Level() slog.Level {
	return h.shared.level.Level()
}

// Emitter 前端日志发射器，未启用时为 nil
func (h *Handler) Emitter() *EventEmitter {
	return h.shared.emitter
}

// Close 停止发射器并关闭日志文件
func (h *Handler) Close() error {
	if h.shared.emitter != nil {
		h.shared.emitter.Stop()
	}
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	if h.shared.file != nil {
		return h.shared.file.Close()
	}
	return nil
}

func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
