// Package gateway 窗口内容调用的命令入口
package gateway

import (
	"log/slog"

	"radiolite/internal/station"
)

// TitleUpdater 把标题同步到托盘图标
type TitleUpdater interface {
	Update(title string) error
}

// Gateway 唯一对外的写操作入口：更新电台标签
type Gateway struct {
	store  *station.Store
	tray   TitleUpdater
	logger *slog.Logger

	// OnUpdated 托盘同步成功后调用
	OnUpdated func(title string)
	// OnFailed 托盘同步失败后调用
	OnFailed func(title string, err error)
}

// New 创建命令入口
func New(store *station.Store, tray TitleUpdater, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, tray: tray, logger: logger}
}

// UpdateTrayTitle 先写入标签存储（总是执行），再同步托盘。
// 托盘错误原样返回，其文本即前端看到的错误信息。
func (g *Gateway) UpdateTrayTitle(title string) error {
	g.store.Set(title)

	if err := g.tray.Update(title); err != nil {
		g.logger.Warn("⚠️ 托盘标题同步失败", "title", title, "error", err)
		if g.OnFailed != nil {
			g.OnFailed(title, err)
		}
		return err
	}

	g.logger.Debug("📻 托盘标题已更新", "title", title)
	if g.OnUpdated != nil {
		g.OnUpdated(title)
	}
	return nil
}

// CurrentTitle 返回当前标签
func (g *Gateway) CurrentTitle() string {
	return g.store.Get()
}
