package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schoolplanner/internal/model"
)

type TimetableRepository struct {
	db *gorm.DB
}

func NewTimetableRepository(db *gorm.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// Create inserts the timetable; the store assigns its ID.
func (r *TimetableRepository) Create(ctx context.Context, timetable *model.Timetable) error {
	if err := r.db.WithContext(ctx).Create(timetable).Error; err != nil {
		return fmt.Errorf("create timetable: %w", err)
	}
	return nil
}

func (r *TimetableRepository) GetByID(ctx context.Context, id uint) (*model.Timetable, error) {
	var timetable model.Timetable
	if err := r.db.WithContext(ctx).First(&timetable, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		return nil, fmt.Errorf("get timetable: %w", err)
	}
	return &timetable, nil
}

func (r *TimetableRepository) List(ctx context.Context) ([]model.Timetable, error) {
	timetables := []model.Timetable{}
	if err := r.db.WithContext(ctx).Order("id").Find(&timetables).Error; err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}
	return timetables, nil
}

// UpdateName replaces the timetable's name inside a single transaction.
func (r *TimetableRepository) UpdateName(ctx context.Context, id uint, name string) (*model.Timetable, error) {
	var timetable model.Timetable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&timetable, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTimetableNotFound
			}
			return err
		}
		timetable.Name = name
		return tx.Save(&timetable).Error
	})
	if err != nil {
		if errors.Is(err, ErrTimetableNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update timetable: %w", err)
	}
	return &timetable, nil
}

// Delete removes the timetable only. Tasks keep their timetable_id.
func (r *TimetableRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Timetable{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete timetable: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTimetableNotFound
	}
	return nil
}
