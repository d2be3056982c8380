package model

import (
	"time"

	"gorm.io/datatypes"
)

// Timeslot 上课时间段 — 对应 timeslots
type Timeslot struct {
	TimeslotID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timeslot_id"`
	DayOfWeek  time.Weekday   `gorm:"type:smallint;not null"                         json:"day_of_week"` // 1-5
	StartTime  datatypes.Time `gorm:"type:time;not null"                             json:"start_time"`
	EndTime    datatypes.Time `gorm:"type:time;not null"                             json:"end_time"`
	BaseModel
}

// TableName 指定表名
func (Timeslot) TableName() string { return "timeslots" }

// NewTimeslot 按 "时:分" 构造时间段
func NewTimeslot(day time.Weekday, startHour, startMin, endHour, endMin int) Timeslot {
	return Timeslot{
		DayOfWeek: day,
		StartTime: datatypes.NewTime(startHour, startMin, 0, 0),
		EndTime:   datatypes.NewTime(endHour, endMin, 0, 0),
	}
}
