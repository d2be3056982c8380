package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NesterenkoAlexander/project-tt4u/internal/dto"
	"github.com/NesterenkoAlexander/project-tt4u/internal/service"
	"github.com/NesterenkoAlexander/project-tt4u/pkg/response"
)

// HealthHandler 健康检查 HTTP 处理器
type HealthHandler struct {
	healthSvc service.HealthService
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(healthSvc service.HealthService) *HealthHandler {
	return &HealthHandler{healthSvc: healthSvc}
}

// Live 存活探针，进程能响应即返回 ok
// GET /health
func (h *HealthHandler) Live(c *gin.Context) {
	response.OK(c, dto.HealthResponse{Status: "ok"})
}

// Ready 就绪探针，依赖全部可用才返回 200
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	resp, ok := h.healthSvc.Ready(c.Request.Context())
	if !ok {
		response.ServiceUnavailable(c, resp)
		return
	}
	response.OK(c, resp)
}
