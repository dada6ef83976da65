// Package platform 平台相关的进程外观：后台(accessory)激活策略与主线程派发
package platform

// HideFromDock 让进程以后台(accessory)模式运行：没有 Dock/任务栏图标，只显示托盘。
// 不区分该模式的平台上为空操作。
func HideFromDock() {
	hideFromDock()
}

// RunOnMainThread 在 UI 主线程上执行 fn（不等待其完成）。
func RunOnMainThread(fn func()) {
	if fn == nil {
		return
	}
	runOnMainThread(fn)
}
