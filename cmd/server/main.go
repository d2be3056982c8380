package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NesterenkoAlexander/project-tt4u/config"
	"github.com/NesterenkoAlexander/project-tt4u/internal/api/handler"
	"github.com/NesterenkoAlexander/project-tt4u/internal/api/router"
	"github.com/NesterenkoAlexander/project-tt4u/internal/demodata"
	"github.com/NesterenkoAlexander/project-tt4u/internal/repository"
	"github.com/NesterenkoAlexander/project-tt4u/internal/service"
	"github.com/NesterenkoAlexander/project-tt4u/pkg/database"
	applogger "github.com/NesterenkoAlexander/project-tt4u/pkg/logger"
	"github.com/NesterenkoAlexander/project-tt4u/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
		zap.String("demo_data", cfg.TimeTable.DemoData),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化存储
	var (
		repo   *repository.Repository
		db     *gorm.DB
		boltDB *bolt.DB
	)
	switch cfg.Store.Driver {
	case "bolt":
		boltDB, err = database.NewBoltDB(cfg.Store.BoltPath, logger)
		if err != nil {
			logger.Fatal("打开 bbolt 存储失败", zap.Error(err))
		}
		repo = repository.NewBoltRepository(boltDB)
	default:
		db, err = database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		logger.Info("数据库连接成功")

		// 3.1 执行数据库迁移
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		repo = repository.NewRepository(db)
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，播种将不加锁", zap.Error(err))
			rdb = nil
		}
	}

	// 5. 依赖注入: Repository → Service → Handler
	svc := service.NewService(cfg, repo, rdb, logger)
	h := handler.NewHandler(svc)

	// 6. 播种演示数据（失败即终止启动）
	variant, err := demodata.ParseVariant(cfg.TimeTable.DemoData)
	if err != nil {
		logger.Fatal("演示数据配置无效", zap.Error(err))
	}
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	summary, err := svc.DemoData.SeedOnStartup(seedCtx, variant)
	seedCancel()
	if err != nil {
		logger.Fatal("演示数据播种失败", zap.Error(err))
	}
	logger.Info("演示数据处理完成",
		zap.String("variant", summary.Variant),
		zap.Bool("skipped", summary.Skipped),
		zap.String("reason", summary.Reason),
	)

	// 7. 初始化路由
	engine := router.Setup(h, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭存储
	if db != nil {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
	if boltDB != nil {
		boltDB.Close()
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
