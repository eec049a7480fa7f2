package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage whole days",
	}

	cmd.AddCommand(
		newDayTitleCmd(app),
		newDayDoneCmd(app),
		newDayUndoneCmd(app),
	)

	return cmd
}

func newDayTitleCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "title TITLE",
		Short: "Set a day's title (e.g. \"Push Day\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dayISO, err := loadDay(ctx, app, &day)
			if err != nil {
				return err
			}

			if err := app.Planner.SetDayTitle(ctx, app.UID, dayISO, args[0]); err != nil {
				return err
			}

			fmt.Printf("Title of %s set to %q\n", dayISO, args[0])
			return nil
		},
	}

	day.register(cmd)

	return cmd
}

func newDayDoneCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark every item of a day as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setDayProgressFixed(app, &day, 100)
		},
	}

	day.register(cmd)

	return cmd
}

func newDayUndoneCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "undone",
		Short: "Reset every item of a day to not done",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setDayProgressFixed(app, &day, 0)
		},
	}

	day.register(cmd)

	return cmd
}

func setDayProgressFixed(app *App, day *dayFlags, progress float64) error {
	ctx := context.Background()
	dayISO, err := loadDay(ctx, app, day)
	if err != nil {
		return err
	}

	if err := app.Planner.SetDayProgress(ctx, app.UID, dayISO, progress); err != nil {
		return err
	}

	fmt.Printf("All items of %s set to %d%%\n", dayISO, int(progress))
	return nil
}
