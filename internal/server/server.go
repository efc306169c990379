package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schoolplanner/internal/config"
	"schoolplanner/internal/handler"
	"schoolplanner/internal/middleware"
	"schoolplanner/internal/repository"
	"schoolplanner/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// Init connects to the database, migrates the schema and wires the engine.
func Init(cfg *config.Config) (*Server, error) {
	db, err := repository.NewDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Printf("✅ Connected to %s database", cfg.DB.Driver)

	if err := repository.Migrate(db); err != nil {
		_ = repository.Close(db)
		return nil, err
	}

	s, err := New(cfg, db)
	if err != nil {
		_ = repository.Close(db)
		return nil, err
	}
	return s, nil
}

// New wires repositories, services and handlers over an open database.
func New(cfg *config.Config, db *gorm.DB) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Initialize repositories
	timetableRepo := repository.NewTimetableRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	timetableSvc := service.NewTimetableService(timetableRepo)
	taskSvc := service.NewTaskService(taskRepo, timetableRepo, service.LocalClock(loc))

	// Initialize handlers
	timetableHandler := handler.NewTimetableHandler(timetableSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)

	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRoutes(r, timetableHandler, taskHandler)
	registerHealth(r, db)
	registerDocs(r)

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		_ = repository.Close(s.DB)
		return fmt.Errorf("❌ failed to listen: %w", err)
	case <-quit:
	}
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
	defer cancel()
	shutdownErr := srv.Shutdown(ctx)
	if err := repository.Close(s.DB); err != nil {
		log.Printf("⚠️  closing database: %v", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("❌ server forced to shutdown: %w", shutdownErr)
	}

	log.Println("✅ Server exited properly")
	return nil
}
