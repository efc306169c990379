package service

import (
	"context"
	"time"

	"schoolplanner/internal/model"
)

type TimetableStore interface {
	Create(ctx context.Context, timetable *model.Timetable) error
	GetByID(ctx context.Context, id uint) (*model.Timetable, error)
	List(ctx context.Context) ([]model.Timetable, error)
	UpdateName(ctx context.Context, id uint, name string) (*model.Timetable, error)
	Delete(ctx context.Context, id uint) error
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByCompleted(ctx context.Context, completed bool) ([]model.Task, error)
	ListByTimetable(ctx context.Context, timetableID uint) ([]model.Task, error)
	ListOverdue(ctx context.Context, today model.Date) ([]model.Task, error)
	ListDueBetween(ctx context.Context, from, to model.Date) ([]model.Task, error)
	ListDueOn(ctx context.Context, day model.Date) ([]model.Task, error)
	Update(ctx context.Context, id uint, fields model.TaskFields) (*model.Task, error)
	Complete(ctx context.Context, id uint) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	DeleteFromTimetable(ctx context.Context, timetableID, taskID uint) error
}

// Clock yields the current instant; "today" is derived from it per call.
type Clock func() time.Time

// LocalClock returns a Clock reporting time.Now in loc.
func LocalClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
