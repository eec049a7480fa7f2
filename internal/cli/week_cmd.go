package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fitweekapp/fitweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show and browse week plans",
	}

	cmd.AddCommand(
		newWeekShowCmd(app),
		newWeekViewCmd(app),
	)

	return cmd
}

func newWeekShowCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a week plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekKey, err := resolveWeekKey(week)
			if err != nil {
				return err
			}

			plan, err := app.Planner.LoadWeek(context.Background(), app.UID, weekKey, 0)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeekPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week key (e.g. 2026-W09, default: current week)")

	return cmd
}

func newWeekViewCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a week plan interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("week view requires an interactive terminal (use `week show` instead)")
			}

			weekKey, err := resolveWeekKey(week)
			if err != nil {
				return err
			}

			plan, err := app.Planner.LoadWeek(context.Background(), app.UID, weekKey, 0)
			if err != nil {
				return err
			}

			model := newWeekViewModel(app, plan)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week key (e.g. 2026-W09, default: current week)")

	return cmd
}
