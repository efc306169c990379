package service

import (
	"context"

	"schoolplanner/internal/model"
)

// TimetableService exposes the timetable operations.
type TimetableService struct {
	timetables TimetableStore
}

func NewTimetableService(timetables TimetableStore) *TimetableService {
	return &TimetableService{timetables: timetables}
}

func (s *TimetableService) Create(ctx context.Context, name string) (*model.Timetable, error) {
	timetable := &model.Timetable{Name: name}
	if err := s.timetables.Create(ctx, timetable); err != nil {
		return nil, err
	}
	return timetable, nil
}

func (s *TimetableService) List(ctx context.Context) ([]model.Timetable, error) {
	return s.timetables.List(ctx)
}

func (s *TimetableService) Get(ctx context.Context, id uint) (*model.Timetable, error) {
	return s.timetables.GetByID(ctx, id)
}

func (s *TimetableService) Update(ctx context.Context, id uint, name string) (*model.Timetable, error) {
	return s.timetables.UpdateName(ctx, id, name)
}

// Delete removes the timetable. Its tasks are kept and still point at id.
func (s *TimetableService) Delete(ctx context.Context, id uint) error {
	return s.timetables.Delete(ctx, id)
}
