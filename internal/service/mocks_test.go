package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"schoolplanner/internal/model"
)

type MockTimetableStore struct {
	mock.Mock
}

func (m *MockTimetableStore) Create(ctx context.Context, timetable *model.Timetable) error {
	args := m.Called(ctx, timetable)
	return args.Error(0)
}

func (m *MockTimetableStore) GetByID(ctx context.Context, id uint) (*model.Timetable, error) {
	args := m.Called(ctx, id)
	timetable, _ := args.Get(0).(*model.Timetable)
	return timetable, args.Error(1)
}

func (m *MockTimetableStore) List(ctx context.Context) ([]model.Timetable, error) {
	args := m.Called(ctx)
	timetables, _ := args.Get(0).([]model.Timetable)
	return timetables, args.Error(1)
}

func (m *MockTimetableStore) UpdateName(ctx context.Context, id uint, name string) (*model.Timetable, error) {
	args := m.Called(ctx, id, name)
	timetable, _ := args.Get(0).(*model.Timetable)
	return timetable, args.Error(1)
}

func (m *MockTimetableStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) tasks(args mock.Arguments) ([]model.Task, error) {
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) List(ctx context.Context) ([]model.Task, error) {
	return m.tasks(m.Called(ctx))
}

func (m *MockTaskStore) ListByCompleted(ctx context.Context, completed bool) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, completed))
}

func (m *MockTaskStore) ListByTimetable(ctx context.Context, timetableID uint) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, timetableID))
}

func (m *MockTaskStore) ListOverdue(ctx context.Context, today model.Date) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, today))
}

func (m *MockTaskStore) ListDueBetween(ctx context.Context, from, to model.Date) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, from, to))
}

func (m *MockTaskStore) ListDueOn(ctx context.Context, day model.Date) ([]model.Task, error) {
	return m.tasks(m.Called(ctx, day))
}

func (m *MockTaskStore) Update(ctx context.Context, id uint, fields model.TaskFields) (*model.Task, error) {
	args := m.Called(ctx, id, fields)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Complete(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskStore) DeleteFromTimetable(ctx context.Context, timetableID, taskID uint) error {
	return m.Called(ctx, timetableID, taskID).Error(0)
}
