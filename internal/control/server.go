// Package control 本机回环 HTTP 控制面：让不在 Webview 里的内容进程也能更新托盘标签
package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// TitleGateway 控制面依赖的命令入口
type TitleGateway interface {
	UpdateTrayTitle(title string) error
	CurrentTitle() string
}

// Options 控制面参数
type Options struct {
	Host      string
	Port      int
	SessionID string
	Metrics   http.Handler
}

// Server 回环 HTTP 服务
type Server struct {
	opts    Options
	gateway TitleGateway
	logger  *slog.Logger

	engine *gin.Engine
	srv    *http.Server
}

type titleRequest struct {
	Title *string `json:"title" binding:"required"`
}

type titleResponse struct {
	Title string `json:"title"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer 创建控制面（不监听端口）
func NewServer(opts Options, gateway TitleGateway, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		opts:    opts,
		gateway: gateway,
		logger:  logger,
		engine:  engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "session": s.opts.SessionID})
	})

	api := s.engine.Group("/api")
	api.GET("/tray/title", s.getTitle)
	api.POST("/tray/title", s.postTitle)

	if s.opts.Metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.opts.Metrics))
	}
}

func (s *Server) getTitle(c *gin.Context) {
	c.JSON(http.StatusOK, titleResponse{Title: s.gateway.CurrentTitle()})
}

func (s *Server) postTitle(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	// 标签已写入存储，托盘同步失败时返回 502
	if err := s.gateway.UpdateTrayTitle(*req.Title); err != nil {
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, titleResponse{Title: *req.Title})
}

// Handler 返回 HTTP 处理器
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr 监听地址
func (s *Server) Addr() string {
	return net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
}

// Start 在后台开始监听，端口被占用时立即返回错误
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("控制面监听失败 %s: %w", s.Addr(), err)
	}

	s.srv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("控制面服务异常退出", "error", err)
		}
	}()

	s.logger.Info("🔌 控制面已启动", "addr", ln.Addr().String())
	return nil
}

// Shutdown 关闭服务
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
