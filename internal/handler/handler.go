package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schoolplanner/internal/middleware"
	"schoolplanner/internal/model"
	"schoolplanner/internal/repository"
	"schoolplanner/internal/service"
)

// TimetableService is what the timetable endpoints need from the service layer.
type TimetableService interface {
	Create(ctx context.Context, name string) (*model.Timetable, error)
	List(ctx context.Context) ([]model.Timetable, error)
	Get(ctx context.Context, id uint) (*model.Timetable, error)
	Update(ctx context.Context, id uint, name string) (*model.Timetable, error)
	Delete(ctx context.Context, id uint) error
}

// TaskService is what the task and association endpoints need.
type TaskService interface {
	Create(ctx context.Context, in service.TaskInput, timetableID *uint) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id uint) (*model.Task, error)
	Update(ctx context.Context, id uint, in service.TaskInput) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	Complete(ctx context.Context, id uint) (*model.Task, error)
	ListCompleted(ctx context.Context) ([]model.Task, error)
	ListPending(ctx context.Context) ([]model.Task, error)
	ListInTimetable(ctx context.Context, timetableID uint) ([]model.Task, error)
	AddToTimetable(ctx context.Context, timetableID uint, in service.TaskInput) (*model.Task, error)
	RemoveFromTimetable(ctx context.Context, timetableID, taskID uint) error
	SetReminder(ctx context.Context, taskID uint, reminderDate model.Date) (*model.Task, error)
	ListOverdue(ctx context.Context) ([]model.Task, error)
	WeeklySummary(ctx context.Context) ([]model.Task, error)
	DailySummary(ctx context.Context) ([]model.Task, error)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (r TaskRequest) input() (service.TaskInput, error) {
	due, err := model.ParseDate(r.DueDate)
	if err != nil {
		return service.TaskInput{}, err
	}
	return service.TaskInput{Title: *r.Title, Description: *r.Description, DueDate: due}, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
}

// respondError maps NotFound to 404 with notFound as detail; any other error
// is logged and reported as 500.
func respondError(c *gin.Context, err error, notFound string) {
	if repository.IsNotFound(err) {
		c.JSON(http.StatusNotFound, DetailResponse{Detail: notFound})
		return
	}
	log.Printf("❌ [%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
}
