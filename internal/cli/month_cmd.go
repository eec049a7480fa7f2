package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/cli/formatter"
	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be 1-12, got %d", month)
			}

			weeks := calendar.WeeksInMonth(year, month)

			plans, err := app.Planner.ListInMonth(context.Background(), app.UID, year, month)
			if err != nil {
				return err
			}
			byKey := make(map[string]*domain.WeekPlan, len(plans))
			for _, p := range plans {
				byKey[p.WeekKey] = p
			}

			fmt.Printf("%s\n", formatter.FormatMonth(year, month, weeks, byKey))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")

	return cmd
}
