package window

import (
	"log/slog"

	"radiolite/internal/tray"
)

// Positioner 托盘定位协作者
type Positioner interface {
	OnTrayEvent(ev tray.Event)
	MoveToTrayCenter(w Window) error
}

// Toggle 托盘主键单击时切换内容窗口的显示状态
type Toggle struct {
	id         string
	windows    *Registry
	positioner Positioner
	logger     *slog.Logger

	// OnChange 每次切换后调用，参数为切换后的可见状态
	OnChange func(visible bool)
}

// NewToggle 创建切换器
func NewToggle(windows *Registry, positioner Positioner, logger *slog.Logger) *Toggle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toggle{
		id:         MainID,
		windows:    windows,
		positioner: positioner,
		logger:     logger,
	}
}

// HandleTrayEvent 处理一个托盘事件
// 这里吞掉的失败都有安全默认值：定位失败照常切换，
// 可见性查询失败按隐藏处理（宁可显示也不要卡在不可见），聚焦失败窗口仍然显示
func (t *Toggle) HandleTrayEvent(ev tray.Event) {
	if t.positioner != nil {
		t.positioner.OnTrayEvent(ev)
	}

	if !ev.IsPrimaryClick() {
		return
	}

	w, ok := t.windows.Lookup(t.id)
	if !ok {
		t.logger.Debug("窗口尚未创建，忽略托盘点击", "window", t.id)
		return
	}

	if t.positioner != nil {
		if err := t.positioner.MoveToTrayCenter(w); err != nil {
			t.logger.Debug("窗口定位失败", "error", err)
		}
	}

	visible, err := w.IsVisible()
	if err != nil {
		t.logger.Debug("窗口可见性查询失败，按隐藏处理", "error", err)
		visible = false
	}

	if visible {
		if err := w.Hide(); err != nil {
			t.logger.Warn("⚠️ 隐藏窗口失败", "error", err)
			return
		}
		t.changed(false)
		return
	}

	if err := w.Show(); err != nil {
		t.logger.Warn("⚠️ 显示窗口失败", "error", err)
		return
	}
	if err := w.Focus(); err != nil {
		t.logger.Debug("窗口聚焦失败", "error", err)
	}
	t.changed(true)
}

func (t *Toggle) changed(visible bool) {
	if t.OnChange != nil {
		t.OnChange(visible)
	}
}
