package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NesterenkoAlexander/project-tt4u/internal/api/handler"
	"github.com/NesterenkoAlexander/project-tt4u/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// 只暴露运维探针，演示数据在启动阶段写入，不提供查询或编辑接口
func Setup(h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health", "/ready"))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Live)
	r.GET("/ready", h.Health.Ready)

	return r
}
