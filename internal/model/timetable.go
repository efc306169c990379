package model

// Timetable groups tasks. Its tasks are found by querying Task.TimetableID,
// there is no stored back-reference.
type Timetable struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index"`
}
