package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fitweekapp/fitweek/internal/cli/formatter"
	"github.com/fitweekapp/fitweek/internal/domain"
)

func fitweekHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateItemName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

// runAddItemForm collects the item fields interactively, pre-filled from any
// flags already set. Exercise name suggestions come from the usage history.
func runAddItemForm(ctx context.Context, app *App, item *domain.WorkoutItem) error {
	suggestions, err := app.Exercises.Search(ctx, app.UID, "", 20)
	if err != nil {
		suggestions = nil
	}

	setsStr := ""
	if item.Sets > 0 {
		setsStr = strconv.Itoa(item.Sets)
	}
	repsStr := ""
	if item.Reps > 0 {
		repsStr = strconv.Itoa(item.Reps)
	}
	weightStr := ""
	if item.Weight > 0 {
		weightStr = strconv.FormatFloat(item.Weight, 'g', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Placeholder("Bench Press").
				Suggestions(suggestions).
				Value(&item.Name).
				Validate(validateItemName),
			huh.NewInput().
				Title("Sets").
				Placeholder("4").
				Value(&setsStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Reps").
				Placeholder("8").
				Value(&repsStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Weight (kg, blank for bodyweight)").
				Placeholder("80").
				Value(&weightStr).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Note (optional)").
				Value(&item.Note),
		),
	).WithTheme(fitweekHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	if setsStr != "" {
		item.Sets, _ = strconv.Atoi(setsStr)
	}
	if repsStr != "" {
		item.Reps, _ = strconv.Atoi(repsStr)
	}
	if weightStr != "" {
		item.Weight, _ = strconv.ParseFloat(weightStr, 64)
	}

	return nil
}
