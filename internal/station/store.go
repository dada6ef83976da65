// Package station 保存当前电台标签（托盘标题的唯一数据源）。
package station

import (
	"log/slog"
	"sync"
)

// DefaultLabel 进程启动时的默认标签
const DefaultLabel = "Radiolite"

// Store 进程级共享的电台标签存储
// 由 bootstrap 创建一次并注入到各组件，不使用包级全局变量
type Store struct {
	mu    sync.Mutex
	value string

	logger *slog.Logger
}

// NewStore 创建标签存储，initial 为空时使用 DefaultLabel
func NewStore(initial string) *Store {
	if initial == "" {
		initial = DefaultLabel
	}
	return &Store{
		value:  initial,
		logger: slog.Default(),
	}
}

// SetLogger 替换日志记录器（日志系统初始化后调用）
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

// Set 替换当前标签
// 临界区内发生异常时本次写入被丢弃，只记录日志，不向调用方传播
func (s *Store) Set(value string) {
	if ok := s.assign(value); !ok {
		s.log().Warn("⚠️ 标签写入被丢弃：无法进入临界区", "label", value)
	}
}

// Get 返回当前标签
func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Store) assign(value string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return true
}

func (s *Store) log() *slog.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
