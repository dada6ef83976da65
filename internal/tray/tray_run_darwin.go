//go:build darwin && !stub

package tray

import (
	"github.com/energye/systray"

	"radiolite/internal/platform"
)

// NSStatusItem 必须在主线程创建，而 Wails 的 startup 回调跑在后台 goroutine，
// 因此使用外部事件循环并通过 GCD 派发到主线程
func runLoop(onReady, onExit func()) func() {
	start, end := systray.RunWithExternalLoop(onReady, onExit)
	platform.RunOnMainThread(start)
	return end
}
