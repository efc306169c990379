package main

import (
	"log"
	"os"
)

// @title           School Planner API
// @version         1.0
// @description     Timetables and tasks with completion, due-date and timetable filters.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
