package model

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"index"`
	Description string
	DueDate     Date
	Completed   bool  `gorm:"not null;default:false"`
	TimetableID *uint `gorm:"index"`
}

// TaskFields are the fields a full task update replaces.
type TaskFields struct {
	Title       string
	Description string
	DueDate     Date
}
