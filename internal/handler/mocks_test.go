package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"schoolplanner/internal/model"
	"schoolplanner/internal/service"
)

type MockTimetableService struct {
	mock.Mock
}

func (m *MockTimetableService) Create(ctx context.Context, name string) (*model.Timetable, error) {
	args := m.Called(ctx, name)
	timetable, _ := args.Get(0).(*model.Timetable)
	return timetable, args.Error(1)
}

func (m *MockTimetableService) List(ctx context.Context) ([]model.Timetable, error) {
	args := m.Called(ctx)
	timetables, _ := args.Get(0).([]model.Timetable)
	return timetables, args.Error(1)
}

func (m *MockTimetableService) Get(ctx context.Context, id uint) (*model.Timetable, error) {
	args := m.Called(ctx, id)
	timetable, _ := args.Get(0).(*model.Timetable)
	return timetable, args.Error(1)
}

func (m *MockTimetableService) Update(ctx context.Context, id uint, name string) (*model.Timetable, error) {
	args := m.Called(ctx, id, name)
	timetable, _ := args.Get(0).(*model.Timetable)
	return timetable, args.Error(1)
}

func (m *MockTimetableService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func taskResult(args mock.Arguments) (*model.Task, error) {
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func taskList(args mock.Arguments) ([]model.Task, error) {
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, in service.TaskInput, timetableID *uint) (*model.Task, error) {
	return taskResult(m.Called(ctx, in, timetableID))
}

func (m *MockTaskService) List(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}

func (m *MockTaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return taskResult(m.Called(ctx, id))
}

func (m *MockTaskService) Update(ctx context.Context, id uint, in service.TaskInput) (*model.Task, error) {
	return taskResult(m.Called(ctx, id, in))
}

func (m *MockTaskService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) Complete(ctx context.Context, id uint) (*model.Task, error) {
	return taskResult(m.Called(ctx, id))
}

func (m *MockTaskService) ListCompleted(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}

func (m *MockTaskService) ListPending(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}

func (m *MockTaskService) ListInTimetable(ctx context.Context, timetableID uint) ([]model.Task, error) {
	return taskList(m.Called(ctx, timetableID))
}

func (m *MockTaskService) AddToTimetable(ctx context.Context, timetableID uint, in service.TaskInput) (*model.Task, error) {
	return taskResult(m.Called(ctx, timetableID, in))
}

func (m *MockTaskService) RemoveFromTimetable(ctx context.Context, timetableID, taskID uint) error {
	return m.Called(ctx, timetableID, taskID).Error(0)
}

func (m *MockTaskService) SetReminder(ctx context.Context, taskID uint, reminderDate model.Date) (*model.Task, error) {
	return taskResult(m.Called(ctx, taskID, reminderDate))
}

func (m *MockTaskService) ListOverdue(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}

func (m *MockTaskService) WeeklySummary(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}

func (m *MockTaskService) DailySummary(ctx context.Context) ([]model.Task, error) {
	return taskList(m.Called(ctx))
}
