package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/copier"
	"github.com/spf13/cobra"
)

func newCopyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy plans between weeks and days",
	}

	cmd.AddCommand(
		newCopyWeekCmd(app),
		newCopyDayCmd(app),
	)

	return cmd
}

func copyOptions(mode string, keepProgress bool) (copier.Options, error) {
	m, err := copier.ParseMode(mode)
	if err != nil {
		return copier.Options{}, err
	}
	return copier.Options{Mode: m, ResetProgress: !keepProgress}, nil
}

func newCopyWeekCmd(app *App) *cobra.Command {
	var mode string
	var keepProgress bool

	cmd := &cobra.Command{
		Use:   "week SOURCE TARGET...",
		Short: "Copy a week plan into one or more target weeks",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			targets := args[1:]

			if _, _, err := calendar.ParseKey(source); err != nil {
				return fmt.Errorf("invalid source week %q: %w", source, err)
			}

			opts, err := copyOptions(mode, keepProgress)
			if err != nil {
				return err
			}

			copied, err := app.Copies.CopyWeek(context.Background(), app.UID, source, targets, opts)
			if err != nil {
				return err
			}

			fmt.Printf("Copied %s into %d week(s)\n", source, copied)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "overwrite", "Collision policy (overwrite|merge)")
	cmd.Flags().BoolVar(&keepProgress, "keep-progress", false, "Keep item progress instead of resetting it to 0")

	return cmd
}

func newCopyDayCmd(app *App) *cobra.Command {
	var mode string
	var keepProgress bool

	cmd := &cobra.Command{
		Use:   "day SOURCE_DATE TARGET_WEEK WEEKDAY",
		Short: "Copy one day into a weekday of a target week",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceDate := args[0]
			targetWeek := args[1]

			if _, err := calendar.ParseDate(sourceDate); err != nil {
				return fmt.Errorf("invalid source date %q: %w", sourceDate, err)
			}
			if _, _, err := calendar.ParseKey(targetWeek); err != nil {
				return fmt.Errorf("invalid target week %q: %w", targetWeek, err)
			}
			weekday, err := strconv.Atoi(args[2])
			if err != nil || weekday < 1 || weekday > 7 {
				return fmt.Errorf("weekday must be 1 (Mon) to 7 (Sun), got %q", args[2])
			}

			opts, err := copyOptions(mode, keepProgress)
			if err != nil {
				return err
			}

			if err := app.Copies.CopyDay(context.Background(), app.UID, sourceDate, targetWeek, weekday, opts); err != nil {
				return err
			}

			fmt.Printf("Copied %s onto %s %s\n", sourceDate, targetWeek, calendar.WeekdayLabel(weekday))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "overwrite", "Collision policy (overwrite|merge)")
	cmd.Flags().BoolVar(&keepProgress, "keep-progress", false, "Keep item progress instead of resetting it to 0")

	return cmd
}
