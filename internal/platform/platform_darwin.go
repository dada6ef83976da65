//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>

extern void goMainThreadCallback(void);

static void setAccessoryPolicy() {
	dispatch_async(dispatch_get_main_queue(), ^{
		[NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
	});
}

static void dispatchOnMain() {
	dispatch_async(dispatch_get_main_queue(), ^{
		goMainThreadCallback();
	});
}
*/
import "C"

import "sync"

var (
	pendingMu sync.Mutex
	pending   []func()
)

//export goMainThreadCallback
func goMainThreadCallback() {
	pendingMu.Lock()
	if len(pending) == 0 {
		pendingMu.Unlock()
		return
	}
	fn := pending[0]
	pending = pending[1:]
	pendingMu.Unlock()

	fn()
}

func hideFromDock() {
	C.setAccessoryPolicy()
}

// 每次派发对应队列中的一个函数，顺序与调用顺序一致
func runOnMainThread(fn func()) {
	pendingMu.Lock()
	pending = append(pending, fn)
	pendingMu.Unlock()
	C.dispatchOnMain()
}
