package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"schoolplanner/internal/config"
	"schoolplanner/internal/repository"
	"schoolplanner/internal/server"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "planner",
		Short: "School planner API server",
		Long: `School planner serves timetables and tasks over HTTP.

CONFIGURATION (environment or .env):
  SERVER_PORT          listen port (default: 8080)
  DB_DRIVER            sqlite | postgres (default: sqlite)
  DB_DSN               sqlite database path (default: schoolplanner.db)
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
                       postgres connection settings
  PLANNER_TIMEZONE     zone used to decide "today" (default: Local)`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the schema and start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the timetables and tasks tables, then exit",
			RunE:  runMigrate,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := server.Init(cfg)
	if err != nil {
		return fmt.Errorf("server initialization failed: %w", err)
	}
	return s.Run()
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := repository.NewDB(cfg.DB)
	if err != nil {
		return err
	}
	defer repository.Close(db)

	if err := repository.Migrate(db); err != nil {
		return err
	}
	log.Println("✅ Schema is up to date")
	return nil
}
