package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// RoomRepository 教室数据访问接口
type RoomRepository interface {
	CreateBatch(ctx context.Context, rooms []model.Room) error
	Count(ctx context.Context) (int64, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) CreateBatch(ctx context.Context, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rooms, createBatchSize).Error
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&n).Error
	return n, err
}
