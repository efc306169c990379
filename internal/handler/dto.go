package handler

import "schoolplanner/internal/model"

// TimetableRequest is the body of timetable create and update.
// Name must be present but may be empty.
type TimetableRequest struct {
	Name *string `json:"name" binding:"required"`
}

// TaskRequest is the body of task update and of adding a task to a timetable.
// Text fields are pointers so that "" is accepted while an absent key is not.
type TaskRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
	DueDate     string  `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// CreateTaskRequest optionally attaches the new task to an existing timetable.
type CreateTaskRequest struct {
	TaskRequest
	TimetableID *uint `json:"timetable_id"`
}

// ReminderQuery is the query string of the reminder endpoint.
type ReminderQuery struct {
	ReminderDate string `form:"reminder_date" binding:"required,datetime=2006-01-02"`
}

type TimetableResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	TimetableID *uint  `json:"timetable_id"`
}

// DetailResponse carries confirmations and error messages.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func toTimetableResponse(timetable *model.Timetable) TimetableResponse {
	return TimetableResponse{ID: timetable.ID, Name: timetable.Name}
}

func toTimetableResponses(timetables []model.Timetable) []TimetableResponse {
	out := make([]TimetableResponse, len(timetables))
	for i := range timetables {
		out[i] = toTimetableResponse(&timetables[i])
	}
	return out
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.String(),
		Completed:   task.Completed,
		TimetableID: task.TimetableID,
	}
}

func toTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	return out
}
