package tray

import (
	"context"

	"radiolite/internal/menu"
)

// MainID 唯一托盘图标的逻辑 ID
const MainID = "main"

// Handle 表示运行中的托盘（用于停止托盘）。
type Handle interface {
	Stop()
}

// Options 托盘启动参数。
type Options struct {
	// ID 托盘图标的逻辑 ID，为空时使用 MainID。
	ID string

	// Icon 托盘图标内容，为空时使用内置图标。
	Icon []byte

	// Title 初始标题（同时作为 tooltip）。
	Title string

	// Menu 右键菜单项。
	Menu []menu.Item

	// Registry 托盘就绪后把图标注册到这里。
	Registry *Registry

	// OnEvent 托盘图标的每个输入事件都会触发（点击、双击等）。
	OnEvent func(Event)

	// OnMenu 用户选择菜单项时触发，参数为菜单项 ID。
	OnMenu func(id string)

	// OnReady 托盘完成初始化后触发。
	OnReady func()
}

// Start 启动系统托盘（平台相关实现）。
func Start(ctx context.Context, opts Options) (Handle, error) {
	if opts.ID == "" {
		opts.ID = MainID
	}
	if len(opts.Icon) == 0 {
		opts.Icon = defaultIcon
	}
	return start(ctx, opts)
}
