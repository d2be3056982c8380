package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Bolt 存储中各实体对应的 bucket
var (
	BucketTimeslots = []byte("timeslots")
	BucketRooms     = []byte("rooms")
	BucketLessons   = []byte("lessons")
)

// NewBoltDB 打开（必要时创建）嵌入式 bbolt 数据文件并确保 bucket 存在
func NewBoltDB(path string, logger *zap.Logger) (*bolt.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	// 文件被其他进程占用时最多等待 5 秒
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("打开 bbolt 数据库失败: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{BucketTimeslots, BucketRooms, BucketLessons} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("创建 bucket %s 失败: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("bbolt 存储已就绪", zap.String("path", path))
	return db, nil
}
