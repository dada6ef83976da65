//go:build !darwin && !stub

package tray

import "github.com/energye/systray"

// systray.Run 会阻塞，在单独的 goroutine 中运行
func runLoop(onReady, onExit func()) func() {
	go systray.Run(onReady, onExit)
	return nil
}
