package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is the only domain error: an id (or id pair) resolved to no record.
var ErrNotFound = errors.New("not found")

var (
	ErrTimetableNotFound = fmt.Errorf("timetable %w", ErrNotFound)
	ErrTaskNotFound      = fmt.Errorf("task %w", ErrNotFound)
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
