package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/spf13/cobra"
)

// dayFlags is the shared --date / --week / --day addressing used by all
// commands that operate on a single day.
type dayFlags struct {
	date string
	week string
	day  int
}

func (f *dayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Day date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.week, "week", "", "Week key (e.g. 2026-W09, default: current week)")
	cmd.Flags().IntVar(&f.day, "day", 0, "Weekday 1 (Mon) to 7 (Sun)")
}

func (f *dayFlags) resolve() (string, error) {
	return resolveDayISO(f.date, f.week, f.day)
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage workout items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
		newItemProgressCmd(app),
		newItemDoneCmd(app),
		newItemUndoneCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var day dayFlags
	var name, note string
	var sets, reps int
	var weight float64
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a workout item to a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dayISO, err := loadDay(ctx, app, &day)
			if err != nil {
				return err
			}

			item := domain.WorkoutItem{
				Name:   name,
				Sets:   sets,
				Reps:   reps,
				Weight: weight,
				Note:   note,
			}

			if interactive || (name == "" && app.IsInteractive != nil && app.IsInteractive()) {
				if err := runAddItemForm(ctx, app, &item); err != nil {
					return err
				}
			}

			if err := app.Planner.AddItem(ctx, app.UID, dayISO, item); err != nil {
				return err
			}

			fmt.Printf("Added %s on %s\n", item.Name, dayISO)
			return nil
		},
	}

	day.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Exercise name")
	cmd.Flags().IntVar(&sets, "sets", 0, "Number of sets")
	cmd.Flags().IntVar(&reps, "reps", 0, "Reps per set")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Fill in the item via a form")

	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var day dayFlags
	var name, note string
	var sets, reps int
	var weight float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a workout item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dayISO, err := day.resolve()
			if err != nil {
				return err
			}

			it, err := resolveItem(ctx, app, dayISO, args[0])
			if err != nil {
				return err
			}
			updated := *it

			if cmd.Flags().Changed("name") {
				updated.Name = name
			}
			if cmd.Flags().Changed("sets") {
				updated.Sets = sets
			}
			if cmd.Flags().Changed("reps") {
				updated.Reps = reps
			}
			if cmd.Flags().Changed("weight") {
				updated.Weight = weight
			}
			if cmd.Flags().Changed("note") {
				updated.Note = note
			}

			if err := app.Planner.UpdateItem(ctx, app.UID, dayISO, updated); err != nil {
				return err
			}

			fmt.Printf("Updated %s on %s\n", updated.Name, dayISO)
			return nil
		},
	}

	day.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Exercise name")
	cmd.Flags().IntVar(&sets, "sets", 0, "Number of sets")
	cmd.Flags().IntVar(&reps, "reps", 0, "Reps per set")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a workout item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dayISO, err := day.resolve()
			if err != nil {
				return err
			}

			it, err := resolveItem(ctx, app, dayISO, args[0])
			if err != nil {
				return err
			}

			if err := app.Planner.DeleteItem(ctx, app.UID, dayISO, it.ID); err != nil {
				return err
			}

			fmt.Printf("Removed %s from %s\n", it.Name, dayISO)
			return nil
		},
	}

	day.register(cmd)

	return cmd
}

func newItemProgressCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "progress ID VALUE",
		Short: "Set item progress (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dayISO, err := day.resolve()
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid progress %q: %w", args[1], err)
			}

			it, err := resolveItem(ctx, app, dayISO, args[0])
			if err != nil {
				return err
			}

			if err := app.Planner.SetItemProgress(ctx, app.UID, dayISO, it.ID, value); err != nil {
				return err
			}

			fmt.Printf("Progress of %s set to %d%%\n", it.Name, domain.ClampProgress(value))
			return nil
		},
	}

	day.register(cmd)

	return cmd
}

func newItemDoneCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a workout item as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setItemProgressFixed(app, &day, args[0], 100)
		},
	}

	day.register(cmd)

	return cmd
}

func newItemUndoneCmd(app *App) *cobra.Command {
	var day dayFlags

	cmd := &cobra.Command{
		Use:   "undone ID",
		Short: "Reset a workout item to not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setItemProgressFixed(app, &day, args[0], 0)
		},
	}

	day.register(cmd)

	return cmd
}

func setItemProgressFixed(app *App, day *dayFlags, ref string, progress float64) error {
	ctx := context.Background()
	dayISO, err := day.resolve()
	if err != nil {
		return err
	}

	it, err := resolveItem(ctx, app, dayISO, ref)
	if err != nil {
		return err
	}

	if err := app.Planner.SetItemProgress(ctx, app.UID, dayISO, it.ID, progress); err != nil {
		return err
	}

	fmt.Printf("Progress of %s set to %d%%\n", it.Name, int(progress))
	return nil
}
