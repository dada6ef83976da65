//go:build !stub

package tray

import (
	"context"
	"sync"

	"github.com/energye/systray"
)

// systrayIcon 基于 energye/systray 的图标句柄
// energye 的 setter 没有错误返回，失败只能由平台层静默处理
type systrayIcon struct{}

func (systrayIcon) SetTitle(title string) error {
	systray.SetTitle(title)
	return nil
}

func (systrayIcon) SetTooltip(tooltip string) error {
	systray.SetTooltip(tooltip)
	return nil
}

type systrayHandle struct {
	opts      Options
	ctx       context.Context
	once      sync.Once
	end       func()
	running   bool
	runningMu sync.Mutex
}

func (h *systrayHandle) Stop() {
	h.once.Do(func() {
		h.runningMu.Lock()
		defer h.runningMu.Unlock()
		if h.running {
			h.running = false
			if h.end != nil {
				h.end()
			} else {
				systray.Quit()
			}
		}
		if h.opts.Registry != nil {
			h.opts.Registry.Unregister(h.opts.ID)
		}
	})
}

func start(ctx context.Context, opts Options) (Handle, error) {
	h := &systrayHandle{
		opts: opts,
		ctx:  ctx,
	}

	h.runningMu.Lock()
	h.running = true
	h.runningMu.Unlock()

	h.end = runLoop(h.onReady, h.onExit)

	// ctx 结束时跟随退出
	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			h.Stop()
		}()
	}

	return h, nil
}

func (h *systrayHandle) onReady() {
	systray.SetIcon(h.opts.Icon)
	if h.opts.Title != "" {
		systray.SetTitle(h.opts.Title)
		systray.SetTooltip(h.opts.Title)
	}

	// 左键单击/双击交给 OnEvent，右键只弹出菜单
	systray.SetOnClick(func(systray.IMenu) {
		h.emit(Event{ID: h.opts.ID, Kind: EventClick, Button: ButtonLeft, State: StateUp})
	})
	systray.SetOnDClick(func(systray.IMenu) {
		h.emit(Event{ID: h.opts.ID, Kind: EventDoubleClick, Button: ButtonLeft, State: StateUp})
	})
	systray.SetOnRClick(func(m systray.IMenu) {
		h.emit(Event{ID: h.opts.ID, Kind: EventClick, Button: ButtonRight, State: StateUp})
		m.ShowMenu()
	})

	for _, item := range h.opts.Menu {
		id := item.ID
		mi := systray.AddMenuItem(item.Label, item.Tooltip)
		if !item.Enabled {
			mi.Disable()
		}
		mi.Click(func() {
			if h.opts.OnMenu != nil {
				h.opts.OnMenu(id)
			}
		})
	}

	if h.opts.Registry != nil {
		h.opts.Registry.Register(h.opts.ID, systrayIcon{})
	}
	if h.opts.OnReady != nil {
		h.opts.OnReady()
	}
}

func (h *systrayHandle) onExit() {
	if h.opts.Registry != nil {
		h.opts.Registry.Unregister(h.opts.ID)
	}
}

func (h *systrayHandle) emit(ev Event) {
	if h.opts.OnEvent != nil {
		h.opts.OnEvent(ev)
	}
}
