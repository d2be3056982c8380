package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
	"github.com/NesterenkoAlexander/project-tt4u/pkg/database"
)

// ── bbolt 存储实现 ──
//
// 每类实体一个 bucket，键为 bucket 自增序列（大端序），值为 JSON。
// 键有序，因此遍历顺序与写入顺序一致。

// boltConn 在独立事务或外部事务上执行读写
type boltConn struct {
	db *bolt.DB
	tx *bolt.Tx // 非空表示处于 Transaction 内
}

func (c boltConn) update(fn func(tx *bolt.Tx) error) error {
	if c.tx != nil {
		return fn(c.tx)
	}
	return c.db.Update(fn)
}

func (c boltConn) view(fn func(tx *bolt.Tx) error) error {
	if c.tx != nil {
		return fn(c.tx)
	}
	return c.db.View(fn)
}

// insertBatch 依次写入 n 条记录，record 返回第 i 条待序列化的值
func insertBatch(c boltConn, bucket []byte, n int, record func(i int) any) error {
	return c.update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		for i := 0; i < n; i++ {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(record(i))
			if err != nil {
				return fmt.Errorf("序列化 %s 第 %d 条记录失败: %w", bucket, i, err)
			}
			if err := b.Put(seqKey(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func countBucket(c boltConn, bucket []byte) (int64, error) {
	var n int64
	err := c.view(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// ── Timeslot ──

type boltTimeslotRepo struct {
	conn boltConn
}

func (r *boltTimeslotRepo) CreateBatch(ctx context.Context, slots []model.Timeslot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	return insertBatch(r.conn, database.BucketTimeslots, len(slots), func(i int) any {
		s := &slots[i]
		if s.TimeslotID == "" {
			s.TimeslotID = uuid.NewString()
		}
		s.CreatedAt, s.UpdatedAt = now, now
		return s
	})
}

func (r *boltTimeslotRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return countBucket(r.conn, database.BucketTimeslots)
}

// ── Room ──

type boltRoomRepo struct {
	conn boltConn
}

func (r *boltRoomRepo) CreateBatch(ctx context.Context, rooms []model.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	return insertBatch(r.conn, database.BucketRooms, len(rooms), func(i int) any {
		room := &rooms[i]
		if room.RoomID == "" {
			room.RoomID = uuid.NewString()
		}
		room.CreatedAt, room.UpdatedAt = now, now
		return room
	})
}

func (r *boltRoomRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return countBucket(r.conn, database.BucketRooms)
}

// ── Lesson ──

type boltLessonRepo struct {
	conn boltConn
}

func (r *boltLessonRepo) CreateBatch(ctx context.Context, lessons []model.Lesson) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	return insertBatch(r.conn, database.BucketLessons, len(lessons), func(i int) any {
		l := &lessons[i]
		if l.LessonID == "" {
			l.LessonID = uuid.NewString()
		}
		l.CreatedAt, l.UpdatedAt = now, now
		l.BindAssignment()

		// 只保存外键，关联对象各自存放在自己的 bucket
		rec := *l
		rec.Timeslot, rec.Room = nil, nil
		return rec
	})
}

func (r *boltLessonRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return countBucket(r.conn, database.BucketLessons)
}
