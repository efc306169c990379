package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schoolplanner/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	return r.find(ctx, "list tasks")
}

// ListByCompleted returns tasks whose completed flag equals completed.
func (r *TaskRepository) ListByCompleted(ctx context.Context, completed bool) ([]model.Task, error) {
	return r.find(ctx, "list tasks by completion", func(db *gorm.DB) *gorm.DB {
		return db.Where("completed = ?", completed)
	})
}

// ListByTimetable returns tasks attached to timetableID. The timetable itself
// is not looked up.
func (r *TaskRepository) ListByTimetable(ctx context.Context, timetableID uint) ([]model.Task, error) {
	return r.find(ctx, "list tasks by timetable", func(db *gorm.DB) *gorm.DB {
		return db.Where("timetable_id = ?", timetableID)
	})
}

// ListOverdue returns incomplete tasks due strictly before today.
func (r *TaskRepository) ListOverdue(ctx context.Context, today model.Date) ([]model.Task, error) {
	return r.find(ctx, "list overdue tasks", func(db *gorm.DB) *gorm.DB {
		return db.Where("due_date < ? AND completed = ?", today, false)
	})
}

// ListDueBetween returns tasks due in [from, to], both bounds inclusive.
func (r *TaskRepository) ListDueBetween(ctx context.Context, from, to model.Date) ([]model.Task, error) {
	return r.find(ctx, "list tasks due between", func(db *gorm.DB) *gorm.DB {
		return db.Where("due_date BETWEEN ? AND ?", from, to)
	})
}

func (r *TaskRepository) ListDueOn(ctx context.Context, day model.Date) ([]model.Task, error) {
	return r.find(ctx, "list tasks due on", func(db *gorm.DB) *gorm.DB {
		return db.Where("due_date = ?", day)
	})
}

// Update replaces title, description and due date. Completion state and
// timetable association are left untouched.
func (r *TaskRepository) Update(ctx context.Context, id uint, fields model.TaskFields) (*model.Task, error) {
	return r.mutate(ctx, "update task", id, func(task *model.Task) {
		task.Title = fields.Title
		task.Description = fields.Description
		task.DueDate = fields.DueDate
	})
}

// Complete marks the task as completed.
func (r *TaskRepository) Complete(ctx context.Context, id uint) (*model.Task, error) {
	return r.mutate(ctx, "complete task", id, func(task *model.Task) {
		task.Completed = true
	})
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteFromTimetable removes the task only when it belongs to timetableID.
func (r *TaskRepository) DeleteFromTimetable(ctx context.Context, timetableID, taskID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND timetable_id = ?", taskID, timetableID).
		Delete(&model.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task from timetable: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) find(ctx context.Context, op string, scopes ...func(*gorm.DB) *gorm.DB) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := r.db.WithContext(ctx).Scopes(scopes...).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

// mutate loads, changes and saves a task in one transaction.
func (r *TaskRepository) mutate(ctx context.Context, op string, id uint, apply func(*model.Task)) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		apply(&task)
		return tx.Save(&task).Error
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}
