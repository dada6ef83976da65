package tray

// Controller 把当前标签投影到托盘图标上
// 标签以 station.Store 为准，这里不保存任何状态
type Controller struct {
	id       string
	registry *Registry
}

// NewController 创建托盘标题控制器
func NewController(registry *Registry) *Controller {
	return &Controller{id: MainID, registry: registry}
}

// Update 设置托盘标题和 tooltip，任一失败立即返回
func (c *Controller) Update(title string) error {
	icon, ok := c.registry.Lookup(c.id)
	if !ok {
		return ErrTrayNotFound
	}
	if err := icon.SetTitle(title); err != nil {
		return &SetFailedError{Op: "title", Err: err}
	}
	if err := icon.SetTooltip(title); err != nil {
		return &SetFailedError{Op: "tooltip", Err: err}
	}
	return nil
}
