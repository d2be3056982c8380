package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// createBatchSize 单条 INSERT 语句最多携带的行数
const createBatchSize = 100

// TimeslotRepository 时间段数据访问接口
type TimeslotRepository interface {
	// CreateBatch 按切片顺序批量写入，并将生成的 ID 回填到切片元素
	CreateBatch(ctx context.Context, slots []model.Timeslot) error
	Count(ctx context.Context) (int64, error)
}

type timeslotRepo struct {
	db *gorm.DB
}

// NewTimeslotRepo 创建 TimeslotRepository 实例
func NewTimeslotRepo(db *gorm.DB) TimeslotRepository {
	return &timeslotRepo{db: db}
}

func (r *timeslotRepo) CreateBatch(ctx context.Context, slots []model.Timeslot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&slots, createBatchSize).Error
}

func (r *timeslotRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Timeslot{}).Count(&n).Error
	return n, err
}
