// app_api.go - 暴露给前端的 API 方法 (Wails Bindings)
// 这些方法会被自动生成为 JavaScript 调用

package main

import (
	"fmt"
	"time"

	"radiolite/internal/tray"
)

// UpdateTrayTitle 设置托盘显示的电台名称
// 标签总是先写入；托盘同步失败时把错误信息返回给前端
func (a *App) UpdateTrayTitle(title string) error {
	return a.gateway.UpdateTrayTitle(title)
}

// GetTrayTitle 获取当前电台名称
func (a *App) GetTrayTitle() string {
	return a.labels.Get()
}

// ShellStatus 外壳状态
type ShellStatus struct {
	Version       string `json:"version"`
	SessionID     string `json:"session_id"`
	Title         string `json:"title"`
	TrayReady     bool   `json:"tray_ready"`
	WindowVisible bool   `json:"window_visible"`
	Uptime        string `json:"uptime"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	StartTime     string `json:"start_time"` // ISO8601 格式的启动时间
	ControlAddr   string `json:"control_addr,omitempty"`
}

// GetShellStatus 获取外壳状态
func (a *App) GetShellStatus() ShellStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()

	uptime := time.Since(a.startTime)
	status := ShellStatus{
		Version:       Version,
		SessionID:     a.sessionID,
		Title:         a.labels.Get(),
		Uptime:        formatDuration(uptime),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     a.startTime.Format(time.RFC3339),
	}

	if a.trays != nil {
		_, status.TrayReady = a.trays.Lookup(tray.MainID)
	}
	if a.mainWindow != nil {
		status.WindowVisible, _ = a.mainWindow.IsVisible()
	}
	if a.control != nil {
		status.ControlAddr = a.control.Addr()
	}
	return status
}

// formatDuration 格式化时长
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
