package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitweekapp/fitweek/internal/cli"
	"github.com/fitweekapp/fitweek/internal/db"
	"github.com/fitweekapp/fitweek/internal/repository"
	"github.com/fitweekapp/fitweek/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fitweek/fitweek.db
	dbPath := os.Getenv("FITWEEK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fitweek", "fitweek.db")
	}

	// The user id everything is stored under. A single local user by default.
	uid := os.Getenv("FITWEEK_USER")
	if uid == "" {
		uid = "local"
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planRepo := repository.NewSQLiteWeekPlanRepo(database)
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)

	// Wire services
	exercises := service.NewExerciseService(exerciseRepo)
	planner := service.NewPlannerService(planRepo, exercises)

	app := &cli.App{
		Planner:   planner,
		Copies:    service.NewCopyService(planRepo, planner),
		Exercises: exercises,
		UID:       uid,
	}

	// Detect interactive terminal for the week view and the add-item form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
