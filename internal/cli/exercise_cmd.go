package cli

import (
	"context"
	"fmt"

	"github.com/fitweekapp/fitweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Exercise name history and autocomplete",
	}

	cmd.AddCommand(
		newExerciseSearchCmd(app),
		newExerciseSeedCmd(app),
	)

	return cmd
}

func newExerciseSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search exercise names by usage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			names, err := app.Exercises.Search(context.Background(), app.UID, query, limit)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatExerciseNames(names))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 8, "Maximum number of results")

	return cmd
}

func newExerciseSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default exercise catalog (no-op if names already exist)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Exercises.SeedDefaults(context.Background(), app.UID); err != nil {
				return err
			}

			fmt.Println("Seeded default exercise catalog.")
			return nil
		},
	}
}
