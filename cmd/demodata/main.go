// Command demodata 生成演示数据集并导出为 Excel 或 iCalendar，便于离线核对。
//
//	demodata -variant LARGE -format xlsx -out large.xlsx
//	demodata -variant SMALL -format ics -week-start 2024-09-02 -out small.ics
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/NesterenkoAlexander/project-tt4u/config"
	"github.com/NesterenkoAlexander/project-tt4u/internal/demodata"
	"github.com/NesterenkoAlexander/project-tt4u/internal/service"
	applogger "github.com/NesterenkoAlexander/project-tt4u/pkg/logger"
)

func main() {
	var (
		variantFlag = flag.String("variant", "SMALL", "数据规模: NONE, SMALL, LARGE")
		format      = flag.String("format", "xlsx", "导出格式: xlsx, ics")
		out         = flag.String("out", "", "输出文件路径（默认 demo_<variant>.<format>）")
		weekStart   = flag.String("week-start", "2024-09-02", "ics 起始周一 (YYYY-MM-DD)")
		logLevel    = flag.String("log-level", "info", "日志级别")
	)
	flag.Parse()

	logger, err := applogger.NewLogger(&config.LogConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	variant, err := demodata.ParseVariant(*variantFlag)
	if err != nil {
		logger.Fatal("参数错误", zap.String("variant", *variantFlag), zap.Error(err))
	}

	ds := demodata.Generate(variant)
	export := service.NewExportService(logger)

	path := *out
	if path == "" {
		path = fmt.Sprintf("demo_%s.%s", strings.ToLower(variant.String()), *format)
	}

	var data []byte
	switch *format {
	case "xlsx":
		buf, err := export.ExportXLSX(ds)
		if err != nil {
			logger.Fatal("导出 Excel 失败", zap.Error(err))
		}
		data = buf.Bytes()
	case "ics":
		monday, err := time.Parse("2006-01-02", *weekStart)
		if err != nil {
			logger.Fatal("起始日期格式错误", zap.String("week_start", *weekStart), zap.Error(err))
		}
		s, err := export.ExportICS(ds, monday)
		if err != nil {
			logger.Fatal("导出 iCalendar 失败", zap.Error(err))
		}
		data = []byte(s)
	default:
		logger.Fatal("不支持的导出格式", zap.String("format", *format))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal("写入文件失败", zap.String("path", path), zap.Error(err))
	}

	logger.Info("导出完成",
		zap.String("variant", variant.String()),
		zap.String("path", path),
		zap.Int("timeslots", len(ds.Timeslots)),
		zap.Int("rooms", len(ds.Rooms)),
		zap.Int("lessons", len(ds.Lessons)),
	)
}
