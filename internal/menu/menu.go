// Package menu 托盘右键菜单模型与事件分发
package menu

import "log/slog"

// 菜单项 ID
const (
	IDQuit = "quit"
)

// ExitCodeQuit 用户从菜单退出时的进程退出码
const ExitCodeQuit = 0

// Item 菜单项
type Item struct {
	ID      string
	Label   string
	Tooltip string
	Enabled bool
}

// Controller 持有静态菜单并把选择路由到对应动作
type Controller struct {
	items  []Item
	exit   func(code int)
	logger *slog.Logger
}

// NewController 创建菜单控制器，exit 在选择“退出”时被调用
func NewController(exit func(code int), logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		items: []Item{
			{ID: IDQuit, Label: "Quit Radiolite", Tooltip: "退出应用", Enabled: true},
		},
		exit:   exit,
		logger: logger,
	}
}

// Model 返回菜单项副本（进程生命周期内不变）
func (c *Controller) Model() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Dispatch 处理菜单选择，未知 ID 忽略
func (c *Controller) Dispatch(id string) {
	switch id {
	case IDQuit:
		c.logger.Info("👋 用户选择退出")
		if c.exit != nil {
			c.exit(ExitCodeQuit)
		}
	default:
		c.logger.Debug("忽略未知菜单项", "id", id)
	}
}
