//go:build !darwin

package platform

func hideFromDock() {}

// Windows/Linux 的托盘库自己处理线程，直接执行
func runOnMainThread(fn func()) {
	fn()
}
