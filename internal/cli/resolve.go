package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/domain"
)

// resolveWeekKey validates an explicit week key, or derives the current ISO
// week when the input is empty.
func resolveWeekKey(input string) (string, error) {
	if input == "" {
		return calendar.WeekKeyOf(time.Now()), nil
	}
	if _, _, err := calendar.ParseKey(input); err != nil {
		return "", err
	}
	return input, nil
}

// resolveDayISO turns the --date / --week / --day flag combination into a
// concrete ISO date. --date wins when set; otherwise the weekday is looked up
// within the (possibly derived) week.
func resolveDayISO(date, weekKey string, weekday int) (string, error) {
	if date != "" {
		if _, err := calendar.ParseDate(date); err != nil {
			return "", fmt.Errorf("invalid date %q: %w", date, err)
		}
		return date, nil
	}

	wk, err := resolveWeekKey(weekKey)
	if err != nil {
		return "", err
	}
	if weekday < 1 || weekday > 7 {
		return "", fmt.Errorf("weekday must be 1 (Mon) to 7 (Sun), got %d", weekday)
	}
	dates, err := calendar.WeekDates(wk)
	if err != nil {
		return "", err
	}
	return dates[weekday-1].DateISO, nil
}

// loadDay resolves the day address and loads its week into the planner
// session, so day and item mutations have an active plan to work against.
func loadDay(ctx context.Context, app *App, day *dayFlags) (string, error) {
	dayISO, err := day.resolve()
	if err != nil {
		return "", err
	}
	weekKey := calendar.WeekKeyOf(mustParseDate(dayISO))
	if _, err := app.Planner.LoadWeek(ctx, app.UID, weekKey, 0); err != nil {
		return "", err
	}
	return dayISO, nil
}

// resolveItem finds a workout item on the given day by exact id, unique id
// prefix, or unique case-insensitive name match, in that order.
func resolveItem(ctx context.Context, app *App, dayISO, input string) (*domain.WorkoutItem, error) {
	if input == "" {
		return nil, fmt.Errorf("item ID is required")
	}

	weekKey := calendar.WeekKeyOf(mustParseDate(dayISO))
	plan, err := app.Planner.LoadWeek(ctx, app.UID, weekKey, 0)
	if err != nil {
		return nil, err
	}
	day := plan.DayByDate(dayISO)
	if day == nil {
		return nil, fmt.Errorf("no day %s in week %s", dayISO, weekKey)
	}

	// 1. Exact id match
	for i := range day.Items {
		if day.Items[i].ID == input {
			return &day.Items[i], nil
		}
	}

	// 2. Unique id prefix match
	var matches []*domain.WorkoutItem
	for i := range day.Items {
		if strings.HasPrefix(day.Items[i].ID, input) {
			matches = append(matches, &day.Items[i])
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	// 3. Unique name match
	norm := domain.NormalizeName(input)
	for i := range day.Items {
		if domain.NormalizeName(day.Items[i].Name) == norm {
			matches = append(matches, &day.Items[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("item not found on %s: %q", dayISO, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("item name %q is ambiguous on %s (%d matches)", input, dayISO, len(matches))
	}
}

func mustParseDate(dateISO string) time.Time {
	t, _ := calendar.ParseDate(dateISO)
	return t
}
