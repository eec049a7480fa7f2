package cli

import (
	"github.com/fitweekapp/fitweek/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands, plus
// the user id the process acts as.
type App struct {
	Planner   service.PlannerService
	Copies    service.CopyService
	Exercises service.ExerciseService

	// UID is the user id all commands operate on (FITWEEK_USER).
	UID string

	// IsInteractive reports whether stdin is a terminal. Interactive
	// surfaces (the week view, the add-item form) are gated on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fitweek" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitweek",
		Short: "Weekly workout planner",
	}

	root.AddCommand(
		newWeekCmd(app),
		newMonthCmd(app),
		newItemCmd(app),
		newDayCmd(app),
		newCopyCmd(app),
		newExerciseCmd(app),
	)

	return root
}
