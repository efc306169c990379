package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolplanner/internal/config"
	"schoolplanner/internal/handler"
	"schoolplanner/internal/middleware"
	"schoolplanner/internal/repository"
	"schoolplanner/internal/server"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.Migrate(db))

	cfg := &config.Config{
		Server:   config.ServerConfig{GinMode: gin.TestMode, AllowOrigins: []string{"*"}},
		Timezone: "UTC",
	}
	s, err := server.New(cfg, db)
	require.NoError(t, err)
	return s.Engine
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if out != nil && resp.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
	}
	return resp.Code
}

func TestServer_TimetableScenario(t *testing.T) {
	r := setupServer(t)
	inThreeDays := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")

	var timetable handler.TimetableResponse
	code := call(t, r, "POST", "/timetable/create", handler.TimetableRequest{Name: strPtr("Fall2024")}, &timetable)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, handler.TimetableResponse{ID: 1, Name: "Fall2024"}, timetable)

	var task handler.TaskResponse
	code = call(t, r, "POST", "/timetable/1/task", handler.TaskRequest{Title: strPtr("Essay"), Description: strPtr("d"), DueDate: inThreeDays}, &task)
	require.Equal(t, http.StatusCreated, code)
	require.NotNil(t, task.TimetableID)

	var listed []handler.TaskResponse
	require.Equal(t, http.StatusOK, call(t, r, "GET", "/timetable/1/tasks", nil, &listed))
	assert.Len(t, listed, 1)

	var overdue []handler.TaskResponse
	require.Equal(t, http.StatusOK, call(t, r, "GET", "/task/overdue", nil, &overdue))
	assert.Empty(t, overdue)

	require.Equal(t, http.StatusOK, call(t, r, "PATCH", fmt.Sprintf("/task/%d/complete", task.ID), nil, nil))

	var completed, pending []handler.TaskResponse
	require.Equal(t, http.StatusOK, call(t, r, "GET", "/task/completed", nil, &completed))
	require.Equal(t, http.StatusOK, call(t, r, "GET", "/task/pending", nil, &pending))
	assert.Len(t, completed, 1)
	assert.Empty(t, pending)

	var detail handler.DetailResponse
	require.Equal(t, http.StatusOK, call(t, r, "DELETE", "/timetable/1", nil, &detail))
	assert.Equal(t, "Timetable deleted", detail.Detail)

	var got handler.TaskResponse
	require.Equal(t, http.StatusOK, call(t, r, "GET", fmt.Sprintf("/task/%d", task.ID), nil, &got))
	require.NotNil(t, got.TimetableID)
	assert.Equal(t, uint(1), *got.TimetableID)
	assert.True(t, got.Completed)

	assert.Equal(t, http.StatusNotFound, call(t, r, "DELETE", "/timetable/1", nil, nil))
}

func TestServer_ReminderAndSummaries(t *testing.T) {
	r := setupServer(t)
	today := time.Now().UTC().Format("2006-01-02")

	var task handler.TaskResponse
	require.Equal(t, http.StatusCreated, call(t, r, "POST", "/task/create",
		handler.CreateTaskRequest{TaskRequest: handler.TaskRequest{Title: strPtr("Quiz"), Description: strPtr(""), DueDate: today}}, &task))
	assert.Nil(t, task.TimetableID)

	var daily []handler.TaskResponse
	require.Equal(t, http.StatusOK, call(t, r, "GET", "/task/daily-summary", nil, &daily))
	assert.Len(t, daily, 1)

	var detail handler.DetailResponse
	code := call(t, r, "POST", fmt.Sprintf("/task/%d/reminder?reminder_date=%s", task.ID, today), nil, &detail)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, fmt.Sprintf("Reminder set for task Quiz on %s", today), detail.Detail)

	assert.Equal(t, http.StatusNotFound, call(t, r, "POST", "/task/999/reminder?reminder_date="+today, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, r, "POST", "/task/create",
		handler.CreateTaskRequest{TaskRequest: handler.TaskRequest{Title: strPtr("x"), Description: strPtr(""), DueDate: today}, TimetableID: uintPtr(77)}, nil))
}

func TestServer_HealthAndRequestID(t *testing.T) {
	r := setupServer(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }
