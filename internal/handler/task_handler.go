package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolplanner/internal/model"
)

const (
	taskNotFound            = "Task not found"
	taskNotFoundInTimetable = "Task not found in the timetable"
)

type TaskHandler struct {
	svc TaskService
}

func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task
// @Description  Responds 201 Created with the stored record.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTaskRequest  true  "Task"
// @Success      201   {object}  TaskResponse
// @Failure      400   {object}  DetailResponse
// @Failure      404   {object}  DetailResponse  "timetable_id does not exist"
// @Router       /task/create [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.svc.Create(c.Request.Context(), in, req.TimetableID)
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List godoc
// @Summary      List tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/view [get]
func (h *TaskHandler) List(c *gin.Context) {
	h.list(c, h.svc.List)
}

// GetByID godoc
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      404  {object}  DetailResponse
// @Router       /task/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	task, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update godoc
// @Summary      Replace a task's title, description and due date
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Task ID"
// @Param        body  body      TaskRequest  true  "Task"
// @Success      200   {object}  TaskResponse
// @Failure      400   {object}  DetailResponse
// @Failure      404   {object}  DetailResponse
// @Router       /task/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		badRequest(c, err)
		return
	}
	task, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /task/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, DetailResponse{Detail: "Task deleted"})
}

// Complete godoc
// @Summary      Mark a task as completed
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      404  {object}  DetailResponse
// @Router       /task/{id}/complete [patch]
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	task, err := h.svc.Complete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ListCompleted godoc
// @Summary      List completed tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/completed [get]
func (h *TaskHandler) ListCompleted(c *gin.Context) {
	h.list(c, h.svc.ListCompleted)
}

// ListPending godoc
// @Summary      List pending tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/pending [get]
func (h *TaskHandler) ListPending(c *gin.Context) {
	h.list(c, h.svc.ListPending)
}

// ListOverdue godoc
// @Summary      List incomplete tasks due before today
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/overdue [get]
func (h *TaskHandler) ListOverdue(c *gin.Context) {
	h.list(c, h.svc.ListOverdue)
}

// WeeklySummary godoc
// @Summary      List tasks due from today through today+7
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/weekly-summary [get]
func (h *TaskHandler) WeeklySummary(c *gin.Context) {
	h.list(c, h.svc.WeeklySummary)
}

// DailySummary godoc
// @Summary      List tasks due today
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  TaskResponse
// @Router       /task/daily-summary [get]
func (h *TaskHandler) DailySummary(c *gin.Context) {
	h.list(c, h.svc.DailySummary)
}

// SetReminder godoc
// @Summary      Acknowledge a reminder for a task (nothing is scheduled)
// @Tags         Tasks
// @Produce      json
// @Param        id             path      int     true  "Task ID"
// @Param        reminder_date  query     string  true  "Reminder date (YYYY-MM-DD)"
// @Success      200  {object}  DetailResponse
// @Failure      400  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /task/{id}/reminder [post]
func (h *TaskHandler) SetReminder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var query ReminderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	reminderDate, err := model.ParseDate(query.ReminderDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	task, err := h.svc.SetReminder(c.Request.Context(), id, reminderDate)
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, DetailResponse{
		Detail: fmt.Sprintf("Reminder set for task %s on %s", task.Title, reminderDate),
	})
}

// ListInTimetable godoc
// @Summary      List tasks attached to a timetable
// @Tags         Timetable tasks
// @Produce      json
// @Param        id   path     int  true  "Timetable ID"
// @Success      200  {array}  TaskResponse
// @Router       /timetable/{id}/tasks [get]
func (h *TaskHandler) ListInTimetable(c *gin.Context) {
	timetableID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tasks, err := h.svc.ListInTimetable(c.Request.Context(), timetableID)
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// AddToTimetable godoc
// @Summary      Create a task attached to a timetable
// @Description  Responds 201 Created with the stored record.
// @Tags         Timetable tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Timetable ID"
// @Param        body  body      TaskRequest  true  "Task"
// @Success      201   {object}  TaskResponse
// @Failure      400   {object}  DetailResponse
// @Router       /timetable/{id}/task [post]
func (h *TaskHandler) AddToTimetable(c *gin.Context) {
	timetableID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		badRequest(c, err)
		return
	}
	task, err := h.svc.AddToTimetable(c.Request.Context(), timetableID, in)
	if err != nil {
		respondError(c, err, timetableNotFound)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// RemoveFromTimetable godoc
// @Summary      Delete a task that belongs to the given timetable
// @Tags         Timetable tasks
// @Produce      json
// @Param        id       path      int  true  "Timetable ID"
// @Param        task_id  path      int  true  "Task ID"
// @Success      200  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /timetable/{id}/task/{task_id} [delete]
func (h *TaskHandler) RemoveFromTimetable(c *gin.Context) {
	timetableID, ok := parseID(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseID(c, "task_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveFromTimetable(c.Request.Context(), timetableID, taskID); err != nil {
		respondError(c, err, taskNotFoundInTimetable)
		return
	}
	c.JSON(http.StatusOK, DetailResponse{Detail: "Task removed from timetable"})
}

func (h *TaskHandler) list(c *gin.Context, fetch func(ctx context.Context) ([]model.Task, error)) {
	tasks, err := fetch(c.Request.Context())
	if err != nil {
		respondError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}
