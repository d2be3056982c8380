package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/NesterenkoAlexander/project-tt4u/internal/dto"
)

// Pinger 可探活的依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService 就绪检查接口
type HealthService interface {
	// Ready 逐项探测依赖，全部可用时 ok=true
	Ready(ctx context.Context) (resp *dto.HealthResponse, ok bool)
}

type healthService struct {
	checks map[string]Pinger
	logger *zap.Logger
}

// NewHealthService 创建 HealthService，checks 中为 nil 的依赖被忽略
func NewHealthService(checks map[string]Pinger, logger *zap.Logger) HealthService {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &healthService{checks: active, logger: logger}
}

const pingTimeout = 2 * time.Second

func (s *healthService) Ready(ctx context.Context) (*dto.HealthResponse, bool) {
	resp := &dto.HealthResponse{Status: "ok", Checks: make(map[string]string, len(s.checks))}
	ok := true

	for name, p := range s.checks {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := p.Ping(pctx)
		cancel()

		if err != nil {
			s.logger.Warn("依赖探活失败", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = "unavailable"
			ok = false
			continue
		}
		resp.Checks[name] = "ok"
	}

	if !ok {
		resp.Status = "degraded"
	}
	return resp, ok
}
