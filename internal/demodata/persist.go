package demodata

import (
	"context"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// Sink 单一实体类型的批量写入端
type Sink[T any] interface {
	CreateBatch(ctx context.Context, items []T) error
}

// Sinks 三类实体各自独立的写入端
type Sinks struct {
	Timeslots Sink[model.Timeslot]
	Rooms     Sink[model.Room]
	Lessons   Sink[model.Lesson]
}

// Persist 依次写入时间段、教室、课程。
// 空数据集不产生任何写入；任一写入失败立即原样返回，不重试，
// 事务边界由调用方负责。
func Persist(ctx context.Context, sinks Sinks, ds *Dataset) error {
	if ds.Empty() {
		return nil
	}

	if err := sinks.Timeslots.CreateBatch(ctx, ds.Timeslots); err != nil {
		return err
	}
	if err := sinks.Rooms.CreateBatch(ctx, ds.Rooms); err != nil {
		return err
	}

	// 种子课程的外键在时间段、教室获得存储 ID 之后才能确定
	for i := range ds.Lessons {
		ds.Lessons[i].BindAssignment()
	}
	return sinks.Lessons.CreateBatch(ctx, ds.Lessons)
}
