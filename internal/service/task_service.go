package service

import (
	"context"

	"schoolplanner/internal/model"
)

// weekSpan is the number of days after today covered by the weekly summary.
const weekSpan = 7

// TaskInput carries the client-editable task fields.
type TaskInput struct {
	Title       string
	Description string
	DueDate     model.Date
}

func (in TaskInput) fields() model.TaskFields {
	return model.TaskFields{Title: in.Title, Description: in.Description, DueDate: in.DueDate}
}

// TaskService exposes task operations, filtered listings and the timetable
// association operations.
type TaskService struct {
	tasks      TaskStore
	timetables TimetableStore
	now        Clock
}

func NewTaskService(tasks TaskStore, timetables TimetableStore, now Clock) *TaskService {
	return &TaskService{tasks: tasks, timetables: timetables, now: now}
}

// Create adds a task. A non-nil timetableID must reference an existing timetable.
func (s *TaskService) Create(ctx context.Context, in TaskInput, timetableID *uint) (*model.Task, error) {
	if timetableID != nil {
		if _, err := s.timetables.GetByID(ctx, *timetableID); err != nil {
			return nil, err
		}
	}
	return s.insert(ctx, in, timetableID)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Update replaces title, description and due date only.
func (s *TaskService) Update(ctx context.Context, id uint, in TaskInput) (*model.Task, error) {
	return s.tasks.Update(ctx, id, in.fields())
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) Complete(ctx context.Context, id uint) (*model.Task, error) {
	return s.tasks.Complete(ctx, id)
}

func (s *TaskService) ListCompleted(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListByCompleted(ctx, true)
}

func (s *TaskService) ListPending(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListByCompleted(ctx, false)
}

// ListInTimetable does not check that the timetable exists; an unknown id
// yields an empty list.
func (s *TaskService) ListInTimetable(ctx context.Context, timetableID uint) ([]model.Task, error) {
	return s.tasks.ListByTimetable(ctx, timetableID)
}

// AddToTimetable creates a task attached to timetableID without looking the
// timetable up.
func (s *TaskService) AddToTimetable(ctx context.Context, timetableID uint, in TaskInput) (*model.Task, error) {
	return s.insert(ctx, in, &timetableID)
}

// RemoveFromTimetable deletes the task only if it belongs to timetableID.
func (s *TaskService) RemoveFromTimetable(ctx context.Context, timetableID, taskID uint) error {
	return s.tasks.DeleteFromTimetable(ctx, timetableID, taskID)
}

// SetReminder checks that the task exists and acknowledges the reminder.
// Nothing is stored or scheduled.
func (s *TaskService) SetReminder(ctx context.Context, taskID uint, _ model.Date) (*model.Task, error) {
	return s.tasks.GetByID(ctx, taskID)
}

func (s *TaskService) ListOverdue(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListOverdue(ctx, s.today())
}

// WeeklySummary lists tasks due from today through today+7, inclusive.
func (s *TaskService) WeeklySummary(ctx context.Context) ([]model.Task, error) {
	today := s.today()
	return s.tasks.ListDueBetween(ctx, today, today.AddDays(weekSpan))
}

func (s *TaskService) DailySummary(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListDueOn(ctx, s.today())
}

func (s *TaskService) insert(ctx context.Context, in TaskInput, timetableID *uint) (*model.Task, error) {
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		TimetableID: timetableID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) today() model.Date {
	return model.NewDate(s.now())
}
