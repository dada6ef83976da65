package window

import (
	"errors"
	"runtime"
	"sync"

	"radiolite/internal/tray"
)

// ErrNoScreen 无法获得屏幕信息，也没有托盘位置
var ErrNoScreen = errors.New("no tray position or screen geometry available")

// Screen 主屏幕尺寸
type Screen struct {
	Width, Height int
}

// 估算托盘区域时使用的菜单栏/任务栏高度
const estimatedBarHeight = 24

// TrayAnchor 记住最近一次托盘事件上报的图标位置，
// 把窗口移动到托盘中心附近
type TrayAnchor struct {
	mu   sync.Mutex
	rect tray.Rect

	screen func() (Screen, bool)
	goos   string
}

// NewTrayAnchor 创建定位器，screen 返回主屏幕尺寸
func NewTrayAnchor(screen func() (Screen, bool)) *TrayAnchor {
	return &TrayAnchor{screen: screen, goos: runtime.GOOS}
}

// OnTrayEvent 记录图标位置（任何类型的事件都会调用）
func (a *TrayAnchor) OnTrayEvent(ev tray.Event) {
	if ev.Rect.Empty() {
		return
	}
	a.mu.Lock()
	a.rect = ev.Rect
	a.mu.Unlock()
}

// MoveToTrayCenter 让窗口水平居中于托盘图标，并放在托盘靠屏幕内侧的一边
func (a *TrayAnchor) MoveToTrayCenter(w Window) error {
	width, height, err := w.Size()
	if err != nil {
		return err
	}

	screen, hasScreen := Screen{}, false
	if a.screen != nil {
		screen, hasScreen = a.screen()
	}

	a.mu.Lock()
	rect := a.rect
	a.mu.Unlock()

	if rect.Empty() {
		if !hasScreen {
			return ErrNoScreen
		}
		rect = a.estimate(screen)
	}

	cx, cy := rect.Center()
	x := cx - width/2
	y := rect.Y + rect.Height
	if hasScreen && cy > screen.Height/2 {
		// 托盘在屏幕下方（Windows 任务栏）
		y = rect.Y - height
	}

	if hasScreen {
		x = clamp(x, 0, screen.Width-width)
		y = clamp(y, 0, screen.Height-height)
	}
	return w.SetPosition(x, y)
}

// estimate 没有图标位置时按平台估算托盘区域：
// macOS/Linux 在右上角，Windows 在右下角
func (a *TrayAnchor) estimate(s Screen) tray.Rect {
	r := tray.Rect{
		X:      s.Width - estimatedBarHeight*4,
		Y:      0,
		Width:  estimatedBarHeight,
		Height: estimatedBarHeight,
	}
	if a.goos == "windows" {
		r.Y = s.Height - estimatedBarHeight
	}
	return r
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
