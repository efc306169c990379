package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "schoolplanner/docs"
	"schoolplanner/internal/handler"
)

// RegisterRoutes mounts the timetable, task and association endpoints.
func RegisterRoutes(r gin.IRouter, timetables *handler.TimetableHandler, tasks *handler.TaskHandler) {
	// Timetable routes
	r.POST("/timetable/create", timetables.Create)
	r.GET("/timetable/view", timetables.List)
	r.GET("/timetable/:id", timetables.GetByID)
	r.PUT("/timetable/:id", timetables.Update)
	r.DELETE("/timetable/:id", timetables.Delete)

	// Task routes
	r.POST("/task/create", tasks.Create)
	r.GET("/task/view", tasks.List)
	r.GET("/task/completed", tasks.ListCompleted)
	r.GET("/task/pending", tasks.ListPending)
	r.GET("/task/overdue", tasks.ListOverdue)
	r.GET("/task/weekly-summary", tasks.WeeklySummary)
	r.GET("/task/daily-summary", tasks.DailySummary)
	r.GET("/task/:id", tasks.GetByID)
	r.PUT("/task/:id", tasks.Update)
	r.DELETE("/task/:id", tasks.Delete)
	r.PATCH("/task/:id/complete", tasks.Complete)
	r.POST("/task/:id/reminder", tasks.SetReminder)

	// Task and timetable associations
	r.GET("/timetable/:id/tasks", tasks.ListInTimetable)
	r.POST("/timetable/:id/task", tasks.AddToTimetable)
	r.DELETE("/timetable/:id/task/:task_id", tasks.RemoveFromTimetable)
}

func registerHealth(r gin.IRouter, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func registerDocs(r gin.IRouter) {
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
