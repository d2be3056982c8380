package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/NesterenkoAlexander/project-tt4u/internal/demodata"
)

// ── ExportXLSX 测试 ──

func TestExportService_ExportXLSX_Empty(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	_, err := svc.ExportXLSX(demodata.Generate(demodata.VariantNone))
	if !errors.Is(err, ErrExportEmptyDataset) {
		t.Errorf("期望 ErrExportEmptyDataset，实际: %v", err)
	}
}

func TestExportService_ExportXLSX_Small(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	buf, err := svc.ExportXLSX(demodata.Generate(demodata.VariantSmall))
	if err != nil {
		t.Fatalf("ExportXLSX 应成功: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应能被解析: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != sheetTimeslots || sheets[1] != sheetRooms || sheets[2] != sheetLessons {
		t.Fatalf("Sheet 列表不符: %v", sheets)
	}

	slotRows, _ := f.GetRows(sheetTimeslots)
	if len(slotRows) != 13 {
		t.Errorf("时间段 Sheet 期望 13 行（含表头），实际=%d", len(slotRows))
	}
	if got := strings.Join(slotRows[1], "|"); got != "1|周一|08:20|09:55" {
		t.Errorf("第一个时间段行不符: %s", got)
	}

	roomRows, _ := f.GetRows(sheetRooms)
	if len(roomRows) != 4 || roomRows[1][1] != "Аудитория А" {
		t.Errorf("教室 Sheet 不符: %v", roomRows)
	}

	lessonRows, _ := f.GetRows(sheetLessons)
	if len(lessonRows) != 21 {
		t.Fatalf("课程 Sheet 期望 21 行（含表头），实际=%d", len(lessonRows))
	}
	seed := lessonRows[1]
	if len(seed) != 6 || seed[1] != "Математика" || seed[4] != "周一 08:20-09:55" || seed[5] != "Аудитория А" {
		t.Errorf("种子课程行不符: %v", seed)
	}
	if second := lessonRows[2]; len(second) > 4 && second[4] != "" {
		t.Errorf("未分配课程不应有时间段: %v", second)
	}
}

// ── ExportICS 测试 ──

func TestExportService_ExportICS_WeekStartMustBeMonday(t *testing.T) {
	svc := NewExportService(zap.NewNop())
	tuesday := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)

	_, err := svc.ExportICS(demodata.Generate(demodata.VariantSmall), tuesday)
	if !errors.Is(err, ErrExportWeekStart) {
		t.Errorf("期望 ErrExportWeekStart，实际: %v", err)
	}
}

func TestExportService_ExportICS_Small(t *testing.T) {
	svc := NewExportService(zap.NewNop())
	monday := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	out, err := svc.ExportICS(demodata.Generate(demodata.VariantSmall), monday)
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}

	if n := strings.Count(out, "BEGIN:VEVENT"); n != 12 {
		t.Errorf("期望 12 个事件，实际=%d", n)
	}
	if n := strings.Count(out, "RRULE:FREQ=WEEKLY"); n != 12 {
		t.Errorf("期望每个事件按周重复，实际=%d", n)
	}
	if !strings.Contains(out, "DTSTART:20240902T082000Z") {
		t.Error("第一个事件应开始于 2024-09-02 08:20 UTC")
	}
	if !strings.Contains(out, "DTSTART:20240903T173000Z") {
		t.Error("最后一个事件应开始于 2024-09-03 17:30 UTC")
	}
	if !strings.Contains(out, "Математика (CS-101)") {
		t.Error("种子课程所在时段应包含课程信息")
	}
	if !strings.Contains(out, "LOCATION:Аудитория А") {
		t.Error("种子课程所在时段应包含教室")
	}
}

func TestExportService_ExportICS_Deterministic(t *testing.T) {
	svc := NewExportService(zap.NewNop())
	monday := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	a, _ := svc.ExportICS(demodata.Generate(demodata.VariantLarge), monday)
	b, _ := svc.ExportICS(demodata.Generate(demodata.VariantLarge), monday)
	if a != b {
		t.Error("相同输入应得到相同的 iCalendar 内容")
	}
}
