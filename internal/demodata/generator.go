// Package demodata 根据配置的规模生成排课演示数据（时间段、教室、课程）。
//
// 生成过程是纯函数：同一规模总是得到相同顺序、相同取值的数据集；
// 写入存储由 Persist 单独完成。
package demodata

import (
	"time"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// Dataset 一次生成的全部数据，切片顺序即生成顺序
type Dataset struct {
	Variant   Variant
	Timeslots []model.Timeslot
	Rooms     []model.Room
	Lessons   []model.Lesson
}

// Empty 数据集是否为空（NONE 规模）
func (d *Dataset) Empty() bool {
	return len(d.Timeslots) == 0 && len(d.Rooms) == 0 && len(d.Lessons) == 0
}

// SeedLesson 返回预分配了时间段与教室的种子课程，空数据集返回 nil
func (d *Dataset) SeedLesson() *model.Lesson {
	if len(d.Lessons) == 0 {
		return nil
	}
	return &d.Lessons[0]
}

// Generate 生成指定规模的数据集
func Generate(variant Variant) *Dataset {
	ds := &Dataset{Variant: variant}
	if variant == VariantNone {
		return ds
	}

	ds.Timeslots = generateTimeslots(variant)
	ds.Rooms = generateRooms(variant)
	ds.Lessons = generateLessons(variant)

	// 第一节课预先排到第一个时间段和第一间教室，作为下游优化的初始状态
	seed := &ds.Lessons[0]
	seed.Timeslot = &ds.Timeslots[0]
	seed.Room = &ds.Rooms[0]

	return ds
}

func daysFor(variant Variant) []time.Weekday {
	days := append([]time.Weekday(nil), baseDays...)
	if variant == VariantLarge {
		days = append(days, extraDays...)
	}
	return days
}

func generateTimeslots(variant Variant) []model.Timeslot {
	periods := append([]period(nil), basePeriods...)
	if variant == VariantLarge {
		periods = append(periods, extraPeriods...)
	}

	days := daysFor(variant)
	slots := make([]model.Timeslot, 0, len(days)*len(periods))
	for _, day := range days {
		for _, p := range periods {
			slots = append(slots, model.NewTimeslot(day, p.startHour, p.startMin, p.endHour, p.endMin))
		}
	}
	return slots
}

func generateRooms(variant Variant) []model.Room {
	names := append([]string(nil), baseRooms...)
	if variant == VariantLarge {
		names = append(names, extraRooms...)
	}

	rooms := make([]model.Room, len(names))
	for i, name := range names {
		rooms[i] = model.Room{Name: name}
	}
	return rooms
}

func generateLessons(variant Variant) []model.Lesson {
	var lessons []model.Lesson
	for _, block := range lessonCatalog {
		if block.largeOnly && variant != VariantLarge {
			continue
		}
		for _, t := range block.lessons {
			lessons = append(lessons, model.Lesson{
				Subject:      t.subject,
				Teacher:      t.teacher,
				StudentGroup: t.group,
			})
		}
	}
	return lessons
}
