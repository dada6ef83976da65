package logging

import (
	"context"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EventLog 推送到前端的日志事件名
const EventLog = "shell:log"

// LogEntry 推送到前端的一条日志
type LogEntry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// EventEmitter Wails 事件发射器
// 负责把日志批量推送到前端
type EventEmitter struct {
	mu sync.Mutex

	ctx     context.Context
	enabled bool

	batchSize     int
	flushInterval time.Duration

	queue    chan LogEntry
	stopChan chan struct{}
	doneChan chan struct{}

	// emit 实际发送函数，默认 runtime.EventsEmit
	emit func(ctx context.Context, name string, data ...interface{})
}

// NewEventEmitter 创建事件发射器
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		batchSize:     10,
		flushInterval: 200 * time.Millisecond,
		emit:          runtime.EventsEmit,
	}
}

// Start 启动事件发射器（Wails 上下文就绪后调用）
func (e *EventEmitter) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.enabled {
		return
	}

	e.ctx = ctx
	e.enabled = true
	e.stopChan = make(chan struct{})
	e.doneChan = make(chan struct{})

	// 有界队列：前端消费慢时丢弃，不拖慢日志主路径
	e.queue = make(chan LogEntry, e.batchSize*20)

	go e.batchSendLoop(e.ctx, e.queue, e.stopChan, e.doneChan)
}

// Stop 停止事件发射器，剩余日志尽量发送
func (e *EventEmitter) Stop() {
	e.mu.Lock()
	if !e.enabled {
		e.mu.Unlock()
		return
	}
	e.enabled = false
	stopChan := e.stopChan
	doneChan := e.doneChan
	e.stopChan = nil
	e.doneChan = nil
	e.queue = nil
	e.mu.Unlock()

	close(stopChan)
	<-doneChan
}

// Emit 发射一条日志事件，不阻塞调用方
func (e *EventEmitter) Emit(entry LogEntry) {
	e.mu.Lock()
	if !e.enabled || e.queue == nil {
		e.mu.Unlock()
		return
	}
	queue := e.queue
	e.mu.Unlock()

	select {
	case queue <- entry:
	default:
	}
}

// IsEnabled 返回是否已启用
func (e *EventEmitter) IsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

func (e *EventEmitter) batchSendLoop(ctx context.Context, queue <-chan LogEntry, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.flushInterval)
	defer ticker.Stop()

	buffer := make([]LogEntry, 0, e.batchSize)
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		batch := make([]LogEntry, len(buffer))
		copy(batch, buffer)
		e.emit(ctx, EventLog, batch)
		buffer = buffer[:0]
	}

	for {
		select {
		case <-stop:
			for {
				select {
				case entry := <-queue:
					buffer = append(buffer, entry)
					if len(buffer) >= e.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case entry := <-queue:
			buffer = append(buffer, entry)
			if len(buffer) >= e.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
