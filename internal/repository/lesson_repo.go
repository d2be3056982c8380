package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// LessonRepository 课程数据访问接口
type LessonRepository interface {
	// CreateBatch 写入课程；关联的时间段、教室须已写入，只保存外键
	CreateBatch(ctx context.Context, lessons []model.Lesson) error
	Count(ctx context.Context) (int64, error)
}

type lessonRepo struct {
	db *gorm.DB
}

// NewLessonRepo 创建 LessonRepository 实例
func NewLessonRepo(db *gorm.DB) LessonRepository {
	return &lessonRepo{db: db}
}

func (r *lessonRepo) CreateBatch(ctx context.Context, lessons []model.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}
	for i := range lessons {
		lessons[i].BindAssignment()
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		CreateInBatches(&lessons, createBatchSize).Error
}

func (r *lessonRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Lesson{}).Count(&n).Error
	return n, err
}
