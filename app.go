// app.go - Wails 应用核心结构
// 组装托盘、窗口切换、菜单和命令入口，负责生命周期管理

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"radiolite/config"
	"radiolite/internal/control"
	"radiolite/internal/gateway"
	"radiolite/internal/logging"
	"radiolite/internal/menu"
	"radiolite/internal/metrics"
	"radiolite/internal/platform"
	"radiolite/internal/station"
	"radiolite/internal/tray"
	"radiolite/internal/utils"
	"radiolite/internal/window"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App 是 Wails 应用的核心结构
// 导出方法会绑定给前端调用，见 app_api.go
type App struct {
	// Wails 上下文
	ctx context.Context

	// 配置与日志
	config        *config.Config
	configWatcher *config.ConfigWatcher
	configPath    string
	logger        *slog.Logger
	logHandler    *logging.Handler
	metrics       *metrics.Metrics
	sessionID     string

	// 核心组件
	labels     *station.Store
	trays      *tray.Registry
	trayCtl    *tray.Controller
	trayHandle tray.Handle
	windows    *window.Registry
	mainWindow *window.WailsWindow
	toggle     *window.Toggle
	menu       *menu.Controller
	gateway    *gateway.Gateway
	control    *control.Server

	// 应用状态
	startTime time.Time

	mu       sync.RWMutex
	quitting int32

	// exit 进程退出（测试中替换）
	exit func(code int)
}

// NewApp 创建新的应用实例
func NewApp() *App {
	a := &App{
		startTime: time.Now(),
		sessionID: uuid.NewString(),
		logger:    slog.Default(),
		labels:    station.NewStore(station.DefaultLabel),
		metrics:   metrics.New(),
	}
	a.exit = a.quit
	return a
}

// loadConfig 加载配置（在 wails.Run 之前调用，窗口尺寸依赖配置）
// 用户配置不存在时写入内嵌默认配置；读取失败时退回内嵌配置，不做热重载
func (a *App) loadConfig(path string) {
	tempLogger := slog.Default()

	if err := utils.EnsureAppDirs(); err != nil {
		tempLogger.Warn("⚠️ 无法创建应用目录", "error", err)
	}

	if path == "" {
		path = utils.GetConfigPath()
	}

	if created, err := config.EnsureFile(path, defaultConfigContent); err != nil {
		tempLogger.Warn("⚠️ 无法写入默认配置", "path", path, "error", err)
	} else if created {
		tempLogger.Info("📝 已写入默认配置", "path", path)
	}

	watcher, err := config.NewConfigWatcher(path, tempLogger)
	if err == nil {
		a.configWatcher = watcher
		a.config = watcher.GetConfig()
		a.configPath = path
		return
	}

	tempLogger.Warn("⚠️ 配置文件不可用，使用内嵌配置", "path", path, "error", err)
	cfg, perr := config.Parse(defaultConfigContent)
	if perr != nil {
		panic(fmt.Sprintf("内嵌配置无效: %v", perr))
	}
	a.config = cfg
	a.configPath = ""
}

// setupLogger 设置日志
func (a *App) setupLogger() {
	logger, handler := logging.Setup(a.config.Logging, filepath.Join(utils.GetLogDir(), "app.log"))
	a.logger = logger.With("session", a.sessionID[:8])
	a.logHandler = handler
	slog.SetDefault(a.logger)

	a.labels.SetLogger(a.logger)

	if a.configWatcher != nil {
		a.configWatcher.UpdateLogger(a.logger)
		a.configWatcher.AddReloadCallback(func(cfg *config.Config) {
			a.logHandler.SetLevel(cfg.Logging.Level)
		})
	}

	a.logger.Info("✅ 日志系统初始化完成",
		"level", a.config.Logging.Level,
		"file_enabled", a.config.Logging.FileEnabled)
}

// wire 创建全部核心组件并互相连接，不触碰系统托盘
func (a *App) wire(ctx context.Context) {
	a.trays = tray.NewRegistry()
	a.trayCtl = tray.NewController(a.trays)

	a.windows = window.NewRegistry()
	a.toggle = window.NewToggle(a.windows, window.NewTrayAnchor(window.PrimaryScreen(ctx)), a.logger)
	a.toggle.OnChange = func(visible bool) {
		a.metrics.ObserveToggle(visible)
		a.emitWindowVisibility(visible)
	}

	a.menu = menu.NewController(func(code int) { a.exit(code) }, a.logger)

	a.gateway = gateway.New(a.labels, a.trayCtl, a.logger)
	a.gateway.OnUpdated = func(title string) {
		a.metrics.ObserveTitleUpdate(nil)
		a.emitTrayTitle(title)
	}
	a.gateway.OnFailed = func(_ string, err error) {
		a.metrics.ObserveTitleUpdate(err)
	}
}

// startup 在 Wails 应用启动时调用
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	a.logger.Info("🚀 Radiolite 启动中...",
		"version", Version,
		"config_file", a.configPath)

	// 1. 只显示托盘，不出现在 Dock/任务栏
	platform.HideFromDock()

	// 2. 组装组件
	a.wire(ctx)

	// 3. 注册主窗口
	a.mainWindow = window.NewWailsWindow(ctx, !a.config.Window.StartHidden)
	a.windows.Register(window.MainID, a.mainWindow)

	// 4. 启动托盘（失败则终止启动）
	if err := a.startTray(ctx); err != nil {
		a.logger.Error("❌ 托盘启动失败", "error", err)
		a.exit(1)
		return
	}

	// 5. 本机控制面
	a.startControl()

	// 6. 前端日志推送
	if em := a.logHandler.Emitter(); em != nil {
		em.Start(ctx)
	}

	a.logger.Info("✅ Radiolite 启动完成", "title", a.labels.Get())
}

// startTray 构建菜单并启动系统托盘
func (a *App) startTray(ctx context.Context) error {
	items := a.menu.Model()
	if len(items) == 0 {
		return fmt.Errorf("菜单为空")
	}

	handle, err := tray.Start(ctx, tray.Options{
		ID:       tray.MainID,
		Title:    a.labels.Get(),
		Menu:     items,
		Registry: a.trays,
		OnEvent:  a.handleTrayEvent,
		OnMenu:   a.handleMenu,
		OnReady: func() {
			a.logger.Info("📻 托盘已就绪", "id", tray.MainID)
		},
	})
	if err != nil {
		return fmt.Errorf("启动托盘: %w", err)
	}

	a.mu.Lock()
	a.trayHandle = handle
	a.mu.Unlock()
	return nil
}

func (a *App) startControl() {
	if !a.config.Control.Enabled {
		return
	}
	srv := control.NewServer(control.Options{
		Host:      a.config.Control.Host,
		Port:      a.config.Control.Port,
		SessionID: a.sessionID,
		Metrics:   a.metrics.Handler(),
	}, a.gateway, a.logger)

	if err := srv.Start(); err != nil {
		// 控制面是附加入口，失败不影响托盘
		a.logger.Warn("⚠️ 控制面启动失败", "error", err)
		return
	}

	a.mu.Lock()
	a.control = srv
	a.mu.Unlock()
}

// handleTrayEvent 托盘输入事件（运行在托盘线程）
func (a *App) handleTrayEvent(ev tray.Event) {
	a.metrics.ObserveTrayEvent(ev.Kind.String())
	a.toggle.HandleTrayEvent(ev)
}

// handleMenu 托盘菜单选择
func (a *App) handleMenu(id string) {
	a.metrics.ObserveMenu(id)
	a.menu.Dispatch(id)
}

// quit 退出进程：code 为 0 时走 Wails 正常退出流程，否则立即退出
func (a *App) quit(code int) {
	if code != 0 || a.ctx == nil {
		os.Exit(code)
	}
	atomic.StoreInt32(&a.quitting, 1)
	// Quit 可能同步触发回调，不在托盘线程里阻塞
	go runtime.Quit(a.ctx)
}

// beforeClose 在窗口关闭前调用，返回 true 阻止关闭
// 托盘应用关闭窗口只是隐藏，真正退出走托盘菜单
func (a *App) beforeClose(ctx context.Context) bool {
	if atomic.LoadInt32(&a.quitting) == 1 {
		return false
	}
	if a.mainWindow != nil {
		_ = a.mainWindow.Hide()
		a.emitWindowVisibility(false)
	}
	return true
}

// domReady 在前端 DOM 准备就绪时调用
func (a *App) domReady(ctx context.Context) {
	a.emitTrayTitle(a.labels.Get())
}

// onSecondInstanceLaunch 再次启动时显示已有窗口，而不是创建第二个托盘
func (a *App) onSecondInstanceLaunch(_ options.SecondInstanceData) {
	if a.mainWindow == nil {
		return
	}
	if err := a.mainWindow.Show(); err == nil {
		_ = a.mainWindow.Focus()
		a.emitWindowVisibility(true)
	}
}

// shutdown 在 Wails 应用关闭时调用
func (a *App) shutdown(ctx context.Context) {
	a.mu.Lock()
	trayHandle := a.trayHandle
	controlSrv := a.control
	a.trayHandle = nil
	a.control = nil
	a.mu.Unlock()

	a.logger.Info("🛑 正在关闭 Radiolite...")

	if controlSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := controlSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("控制面关闭失败", "error", err)
		}
		cancel()
	}

	if trayHandle != nil {
		trayHandle.Stop()
	}

	if a.configWatcher != nil {
		_ = a.configWatcher.Close()
	}

	a.logger.Info("✅ Radiolite 已关闭")

	if a.logHandler != nil {
		_ = a.logHandler.Close()
	}
}
