// Package window 内容窗口的显示/隐藏切换与托盘定位
package window

import "sync"

// MainID 唯一内容窗口的逻辑 ID
const MainID = "main"

// Window 内容窗口句柄
type Window interface {
	Size() (width, height int, err error)
	SetPosition(x, y int) error
	IsVisible() (bool, error)
	Show() error
	Hide() error
	Focus() error
}

// Registry 按逻辑 ID 查找窗口
// 窗口可能在第一个托盘事件之后才注册
type Registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

// Register 注册窗口
func (r *Registry) Register(id string, w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[id] = w
}

// Lookup 查找窗口
func (r *Registry) Lookup(id string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[id]
	return w, ok
}
