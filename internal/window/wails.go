package window

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrNoContext Wails 运行时尚未就绪
var ErrNoContext = errors.New("wails runtime context not ready")

// WailsWindow 基于 Wails 运行时的主窗口
// Wails v2 没有可见性查询接口，这里自己记录显示/隐藏状态
type WailsWindow struct {
	ctx context.Context

	mu      sync.Mutex
	visible bool
}

// NewWailsWindow 创建窗口句柄，visible 为启动时的可见状态
func NewWailsWindow(ctx context.Context, visible bool) *WailsWindow {
	return &WailsWindow{ctx: ctx, visible: visible}
}

func (w *WailsWindow) Size() (int, int, error) {
	if w.ctx == nil {
		return 0, 0, ErrNoContext
	}
	width, height := runtime.WindowGetSize(w.ctx)
	return width, height, nil
}

func (w *WailsWindow) SetPosition(x, y int) error {
	if w.ctx == nil {
		return ErrNoContext
	}
	runtime.WindowSetPosition(w.ctx, x, y)
	return nil
}

func (w *WailsWindow) IsVisible() (bool, error) {
	if w.ctx == nil {
		return false, ErrNoContext
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, nil
}

func (w *WailsWindow) Show() error {
	if w.ctx == nil {
		return ErrNoContext
	}
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
	w.setVisible(true)
	return nil
}

func (w *WailsWindow) Hide() error {
	if w.ctx == nil {
		return ErrNoContext
	}
	runtime.WindowHide(w.ctx)
	w.setVisible(false)
	return nil
}

// Focus 把窗口带到最前（v2 没有独立的聚焦接口）
func (w *WailsWindow) Focus() error {
	if w.ctx == nil {
		return ErrNoContext
	}
	runtime.WindowSetAlwaysOnTop(w.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.ctx, false)
	return nil
}

// MarkHidden 窗口被系统关闭按钮隐藏时同步状态
func (w *WailsWindow) MarkHidden() {
	w.setVisible(false)
}

func (w *WailsWindow) setVisible(v bool) {
	w.mu.Lock()
	w.visible = v
	w.mu.Unlock()
}

// PrimaryScreen 返回 Wails 报告的主屏幕尺寸
func PrimaryScreen(ctx context.Context) func() (Screen, bool) {
	return func() (Screen, bool) {
		if ctx == nil {
			return Screen{}, false
		}
		screens, err := runtime.ScreenGetAll(ctx)
		if err != nil || len(screens) == 0 {
			return Screen{}, false
		}
		chosen := screens[0]
		for _, s := range screens {
			if s.IsPrimary {
				chosen = s
				break
			}
		}
		return Screen{Width: chosen.Size.Width, Height: chosen.Size.Height}, true
	}
}
