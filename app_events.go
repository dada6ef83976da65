// app_events.go - Wails 事件发射
// 把外壳状态变化通知到前端

package main

import (
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// 事件名称常量
const (
	EventTrayTitle        = "tray:title"
	EventWindowVisibility = "window:visibility"
)

// emitEvent Wails 上下文未就绪时（测试或启动前）直接忽略
var emitEvent = runtime.EventsEmit

// emitTrayTitle 托盘标题更新后通知前端
func (a *App) emitTrayTitle(title string) {
	if a.ctx == nil {
		return
	}
	emitEvent(a.ctx, EventTrayTitle, map[string]string{"title": title})
}

// emitWindowVisibility 窗口显示/隐藏后通知前端
func (a *App) emitWindowVisibility(visible bool) {
	if a.ctx == nil {
		return
	}
	emitEvent(a.ctx, EventWindowVisibility, map[string]bool{"visible": visible})
}
