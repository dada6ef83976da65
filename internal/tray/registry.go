package tray

import "sync"

// Icon 托盘图标句柄，标题和 tooltip 可以独立设置
type Icon interface {
	SetTitle(title string) error
	SetTooltip(tooltip string) error
}

// Registry 按逻辑 ID 保存托盘图标句柄
type Registry struct {
	mu    sync.RWMutex
	icons map[string]Icon
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{icons: make(map[string]Icon)}
}

// Register 注册图标，同一 ID 只保留一个
func (r *Registry) Register(id string, icon Icon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.icons[id] = icon
}

// Unregister 移除图标
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.icons, id)
}

// Lookup 查找图标
func (r *Registry) Lookup(id string) (Icon, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	icon, ok := r.icons[id]
	return icon, ok
}
