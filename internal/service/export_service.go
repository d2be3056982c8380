package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/NesterenkoAlexander/project-tt4u/internal/demodata"
	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmptyDataset = errors.New("数据集为空，无可导出内容")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
	ErrExportWeekStart    = errors.New("起始日期必须是周一")
)

// ExportService 数据集导出接口
//
// 设计说明：
//   - 导出的是生成器产出的数据集本身，用于离线核对，不读取存储
//   - Excel 每类实体一个 Sheet，行顺序即生成顺序
//   - iCalendar 每个时间段一个按周重复的事件，种子课程所在时段带课程信息
type ExportService interface {
	ExportXLSX(ds *demodata.Dataset) (*bytes.Buffer, error)
	ExportICS(ds *demodata.Dataset, weekStart time.Time) (string, error)
}

type exportService struct {
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(logger *zap.Logger) ExportService {
	return &exportService{logger: logger}
}

var dayNames = map[time.Weekday]string{
	time.Monday:    "周一",
	time.Tuesday:   "周二",
	time.Wednesday: "周三",
	time.Thursday:  "周四",
	time.Friday:    "周五",
}

const (
	sheetTimeslots = "时间段"
	sheetRooms     = "教室"
	sheetLessons   = "课程"
)

// ═══════════════════════════════════════════════════════════
// ExportXLSX — 导出为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportXLSX(ds *demodata.Dataset) (*bytes.Buffer, error) {
	if ds == nil || ds.Empty() {
		return nil, ErrExportEmptyDataset
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	slotRows := make([][]interface{}, 0, len(ds.Timeslots))
	for i, ts := range ds.Timeslots {
		slotRows = append(slotRows, []interface{}{i + 1, dayNames[ts.DayOfWeek], clock(ts.StartTime), clock(ts.EndTime)})
	}

	roomRows := make([][]interface{}, 0, len(ds.Rooms))
	for i, r := range ds.Rooms {
		roomRows = append(roomRows, []interface{}{i + 1, r.Name})
	}

	lessonRows := make([][]interface{}, 0, len(ds.Lessons))
	for i, l := range ds.Lessons {
		slotText, roomText := "", ""
		if l.Assigned() {
			slotText = slotLabel(l.Timeslot)
			roomText = l.Room.Name
		}
		lessonRows = append(lessonRows, []interface{}{i + 1, l.Subject, l.Teacher, l.StudentGroup, slotText, roomText})
	}

	sheets := []struct {
		name   string
		header []interface{}
		widths []float64
		rows   [][]interface{}
	}{
		{sheetTimeslots, []interface{}{"序号", "星期", "开始", "结束"}, []float64{8, 10, 10, 10}, slotRows},
		{sheetRooms, []interface{}{"序号", "名称"}, []float64{8, 20}, roomRows},
		{sheetLessons, []interface{}{"序号", "学科", "教师", "学生组", "时间段", "教室"}, []float64{8, 22, 14, 12, 18, 16}, lessonRows},
	}

	for i, sh := range sheets {
		if i == 0 {
			// 复用默认 Sheet1
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, s.fail(err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, s.fail(err)
		}

		for c, w := range sh.widths {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetColWidth(sh.name, col, col, w)
		}

		if err := f.SetSheetRow(sh.name, "A1", &sh.header); err != nil {
			return nil, s.fail(err)
		}
		lastHeader, _ := excelize.CoordinatesToCellName(len(sh.header), 1)
		f.SetCellStyle(sh.name, "A1", lastHeader, headerStyle)

		for r, row := range sh.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			row := row
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return nil, s.fail(err)
			}
		}
	}
	f.SetActiveSheet(0)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, s.fail(err)
	}
	return buf, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — 导出为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ds *demodata.Dataset, weekStart time.Time) (string, error) {
	if ds == nil || ds.Empty() {
		return "", ErrExportEmptyDataset
	}
	if weekStart.Weekday() != time.Monday {
		return "", ErrExportWeekStart
	}
	monday := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//project-tt4u//demo timetable//RU")

	seed := ds.SeedLesson()
	for i := range ds.Timeslots {
		ts := &ds.Timeslots[i]
		day := monday.AddDate(0, 0, int(ts.DayOfWeek-time.Monday))

		ev := cal.AddEvent(fmt.Sprintf("%s-timeslot-%d@project-tt4u", ds.Variant, i+1))
		ev.SetDtStampTime(monday)
		ev.SetStartAt(day.Add(time.Duration(ts.StartTime)))
		ev.SetEndAt(day.Add(time.Duration(ts.EndTime)))
		ev.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")

		if seed != nil && seed.Timeslot == ts {
			ev.SetSummary(fmt.Sprintf("%s (%s)", seed.Subject, seed.StudentGroup))
			ev.SetDescription("教师: " + seed.Teacher)
			if seed.Room != nil {
				ev.SetLocation(seed.Room.Name)
			}
			continue
		}
		ev.SetSummary(slotLabel(ts))
	}

	return cal.Serialize(), nil
}

// ── 内部辅助方法 ──

func (s *exportService) fail(err error) error {
	s.logger.Error("生成导出文件失败", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
}

// clock 将 TIME 值格式化为 "HH:MM"
func clock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func slotLabel(ts *model.Timeslot) string {
	return fmt.Sprintf("%s %s-%s", dayNames[ts.DayOfWeek], clock(ts.StartTime), clock(ts.EndTime))
}
