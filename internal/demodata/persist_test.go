package demodata

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
)

// ── 测试辅助 ──

// recordingSink 记录调用顺序并模拟存储回填 ID
type recordingSink[T any] struct {
	name   string
	calls  *[]string
	err    error
	assign func(i int, item *T)
	got    []T
}

func (s *recordingSink[T]) CreateBatch(_ context.Context, items []T) error {
	*s.calls = append(*s.calls, s.name)
	if s.err != nil {
		return s.err
	}
	for i := range items {
		if s.assign != nil {
			s.assign(i, &items[i])
		}
	}
	s.got = items
	return nil
}

func newRecordingSinks() (Sinks, *recordingSink[model.Timeslot], *recordingSink[model.Room], *recordingSink[model.Lesson], *[]string) {
	calls := &[]string{}
	ts := &recordingSink[model.Timeslot]{name: "timeslots", calls: calls, assign: func(i int, s *model.Timeslot) {
		s.TimeslotID = fmt.Sprintf("ts-%d", i)
	}}
	rooms := &recordingSink[model.Room]{name: "rooms", calls: calls, assign: func(i int, r *model.Room) {
		r.RoomID = fmt.Sprintf("room-%d", i)
	}}
	lessons := &recordingSink[model.Lesson]{name: "lessons", calls: calls}
	return Sinks{Timeslots: ts, Rooms: rooms, Lessons: lessons}, ts, rooms, lessons, calls
}

// ── Persist 测试 ──

func TestPersist_None_NoStoreCalls(t *testing.T) {
	sinks, _, _, _, calls := newRecordingSinks()

	if err := Persist(context.Background(), sinks, Generate(VariantNone)); err != nil {
		t.Fatalf("Persist 应成功: %v", err)
	}
	if len(*calls) != 0 {
		t.Errorf("NONE 不应调用存储，实际调用: %v", *calls)
	}
}

func TestPersist_OrderAndSeedBinding(t *testing.T) {
	sinks, ts, rooms, lessons, calls := newRecordingSinks()
	ds := Generate(VariantSmall)

	if err := Persist(context.Background(), sinks, ds); err != nil {
		t.Fatalf("Persist 应成功: %v", err)
	}

	want := []string{"timeslots", "rooms", "lessons"}
	if fmt.Sprint(*calls) != fmt.Sprint(want) {
		t.Errorf("期望写入顺序 %v，实际 %v", want, *calls)
	}
	if len(ts.got) != 12 || len(rooms.got) != 3 || len(lessons.got) != 20 {
		t.Errorf("写入数量不符: %d/%d/%d", len(ts.got), len(rooms.got), len(lessons.got))
	}

	seed := lessons.got[0]
	if seed.TimeslotID == nil || *seed.TimeslotID != "ts-0" {
		t.Errorf("种子课程 TimeslotID 应为 ts-0，实际=%v", seed.TimeslotID)
	}
	if seed.RoomID == nil || *seed.RoomID != "room-0" {
		t.Errorf("种子课程 RoomID 应为 room-0，实际=%v", seed.RoomID)
	}
	for i, l := range lessons.got[1:] {
		if l.TimeslotID != nil || l.RoomID != nil {
			t.Errorf("第 %d 节课不应有外键", i+2)
		}
	}
}

func TestPersist_StoreFailurePropagatesUnchanged(t *testing.T) {
	storeErr := errors.New("磁盘已满")

	sinks, _, rooms, _, calls := newRecordingSinks()
	rooms.err = storeErr

	err := Persist(context.Background(), sinks, Generate(VariantLarge))
	if err != storeErr {
		t.Fatalf("期望原样返回存储错误，实际: %v", err)
	}

	want := []string{"timeslots", "rooms"}
	if fmt.Sprint(*calls) != fmt.Sprint(want) {
		t.Errorf("失败后不应继续写入，实际调用: %v", *calls)
	}
}
