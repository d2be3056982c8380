package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NesterenkoAlexander/project-tt4u/internal/model"
	"github.com/NesterenkoAlexander/project-tt4u/internal/repository"
)

// ── 调用记录 ──

type callLog struct {
	calls []string
}

func (c *callLog) record(name string) { c.calls = append(c.calls, name) }

// ── Mock TimeslotRepository ──

type mockTimeslotRepo struct {
	log      *callLog
	slots    []model.Timeslot
	existing int64
	err      error
	countErr error
}

func (m *mockTimeslotRepo) CreateBatch(_ context.Context, slots []model.Timeslot) error {
	m.log.record("timeslots.create")
	if m.err != nil {
		return m.err
	}
	for i := range slots {
		slots[i].TimeslotID = fmt.Sprintf("ts-%d", len(m.slots)+1)
		m.slots = append(m.slots, slots[i])
	}
	return nil
}

func (m *mockTimeslotRepo) Count(_ context.Context) (int64, error) {
	m.log.record("timeslots.count")
	return m.existing + int64(len(m.slots)), m.countErr
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	log   *callLog
	rooms []model.Room
	err   error
}

func (m *mockRoomRepo) CreateBatch(_ context.Context, rooms []model.Room) error {
	m.log.record("rooms.create")
	if m.err != nil {
		return m.err
	}
	for i := range rooms {
		rooms[i].RoomID = fmt.Sprintf("room-%d", len(m.rooms)+1)
		m.rooms = append(m.rooms, rooms[i])
	}
	return nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

// ── Mock LessonRepository ──

type mockLessonRepo struct {
	log     *callLog
	lessons []model.Lesson
	err     error
}

func (m *mockLessonRepo) CreateBatch(_ context.Context, lessons []model.Lesson) error {
	m.log.record("lessons.create")
	if m.err != nil {
		return m.err
	}
	m.lessons = append(m.lessons, lessons...)
	return nil
}

func (m *mockLessonRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.lessons)), nil
}

// ── Mock SeedLocker ──

type mockLocker struct {
	log      *callLog
	held     bool
	err      error
	released bool
	ttl      time.Duration
}

func (m *mockLocker) AcquireLock(_ context.Context, _ string, ttl time.Duration) (func(context.Context) error, bool, error) {
	m.log.record("lock.acquire")
	m.ttl = ttl
	if m.err != nil {
		return nil, false, m.err
	}
	if m.held {
		return nil, false, nil
	}
	m.held = true
	return func(context.Context) error {
		m.log.record("lock.release")
		m.held = false
		m.released = true
		return nil
	}, true, nil
}

// ── 组装 ──

type mockStore struct {
	log      *callLog
	timeslot *mockTimeslotRepo
	room     *mockRoomRepo
	lesson   *mockLessonRepo
	repo     *repository.Repository
}

func newMockStore() *mockStore {
	log := &callLog{}
	s := &mockStore{
		log:      log,
		timeslot: &mockTimeslotRepo{log: log},
		room:     &mockRoomRepo{log: log},
		lesson:   &mockLessonRepo{log: log},
	}
	s.repo = &repository.Repository{
		Timeslot: s.timeslot,
		Room:     s.room,
		Lesson:   s.lesson,
	}
	return s
}
