// Package metrics 托盘外壳的运行指标
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 外壳指标集合，使用独立 Registry，避免和其他库的默认指标混在一起
type Metrics struct {
	registry *prometheus.Registry

	TitleUpdates  *prometheus.CounterVec
	WindowToggles *prometheus.CounterVec
	TrayEvents    *prometheus.CounterVec
	MenuSelects   *prometheus.CounterVec
}

// New 创建并注册全部指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TitleUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "radiolite_tray_title_updates_total",
			Help: "Tray title updates by result (ok, error)",
		}, []string{"result"}),
		WindowToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "radiolite_window_toggles_total",
			Help: "Window visibility changes caused by tray clicks",
		}, []string{"visible"}),
		TrayEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "radiolite_tray_events_total",
			Help: "Tray icon input events by kind",
		}, []string{"kind"}),
		MenuSelects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "radiolite_menu_selections_total",
			Help: "Context menu selections by item id",
		}, []string{"id"}),
	}
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 返回底层 Registry（测试用）
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTitleUpdate 记录一次标题更新结果
func (m *Metrics) ObserveTitleUpdate(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.TitleUpdates.WithLabelValues(result).Inc()
}

// ObserveToggle 记录一次窗口切换
func (m *Metrics) ObserveToggle(visible bool) {
	if m == nil {
		return
	}
	v := "false"
	if visible {
		v = "true"
	}
	m.WindowToggles.WithLabelValues(v).Inc()
}

// ObserveTrayEvent 记录一个托盘事件
func (m *Metrics) ObserveTrayEvent(kind string) {
	if m == nil {
		return
	}
	m.TrayEvents.WithLabelValues(kind).Inc()
}

// ObserveMenu 记录一次菜单选择
func (m *Metrics) ObserveMenu(id string) {
	if m == nil {
		return
	}
	m.MenuSelects.WithLabelValues(id).Inc()
}
