package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig 在临时目录写入 yaml 配置并返回路径
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}

	if cfg.TimeTable.DemoData != "SMALL" {
		t.Errorf("期望默认 demo_data=SMALL，实际=%s", cfg.TimeTable.DemoData)
	}
	if !cfg.TimeTable.SkipIfSeeded {
		t.Error("期望默认 skip_if_seeded=true")
	}
	if cfg.TimeTable.SeedLockTTL != 30*time.Second {
		t.Errorf("期望默认 seed_lock_ttl=30s，实际=%s", cfg.TimeTable.SeedLockTTL)
	}
	if cfg.Store.Driver != "postgres" {
		t.Errorf("期望默认 store.driver=postgres，实际=%s", cfg.Store.Driver)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("期望默认端口 8080，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
timetable:
  demo_data: none
store:
  driver: bolt
  bolt_path: /tmp/tt.db
`)
	t.Setenv("TT_TIMETABLE_DEMO_DATA", "large")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.TimeTable.DemoData != "LARGE" {
		t.Errorf("环境变量应覆盖配置文件，期望 LARGE，实际=%s", cfg.TimeTable.DemoData)
	}
	if cfg.Store.Driver != "bolt" || cfg.Store.BoltPath != "/tmp/tt.db" {
		t.Errorf("存储配置不符: %+v", cfg.Store)
	}
}

func TestLoad_RejectsUnknownVariant(t *testing.T) {
	_, err := Load(writeConfig(t, "timetable:\n  demo_data: MEDIUM\n"))
	if err == nil {
		t.Fatal("未知的 demo_data 应被拒绝")
	}
	if !strings.Contains(err.Error(), "DemoData") {
		t.Errorf("错误信息应指出 DemoData，实际: %v", err)
	}
}

func TestLoad_RejectsBadPort(t *testing.T) {
	if _, err := Load(writeConfig(t, "server:\n  port: 70000\n")); err == nil {
		t.Fatal("非法端口应被拒绝")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	if _, err := Load(writeConfig(t, "store:\n  driver: mongo\n")); err == nil {
		t.Fatal("未知存储驱动应被拒绝")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable", Timezone: "UTC"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN 不符:\n期望 %s\n实际 %s", want, got)
	}
}
