package service

import (
	"context"
	"errors"

	"github.com/fitweekapp/fitweek/internal/copier"
	"github.com/fitweekapp/fitweek/internal/domain"
)

// ErrNoActivePlan is returned by mutations invoked before a week is loaded.
var ErrNoActivePlan = errors.New("no active week plan loaded")

// PlannerService is the single-session planner: it tracks the selected week,
// holds the loaded active plan, and applies item mutations to it. Every
// mutation works on a deep copy of the active plan, persists the copy, and
// only adopts it on success; a failed persist leaves the visible state at
// its pre-mutation value. Mutation targets that are absent (day or item)
// are silent no-ops, since a well-formed week always carries all 7 days.
type PlannerService interface {
	// EnsureWeek returns the stored plan for the week, constructing and
	// persisting an empty 7-day skeleton when absent. This is the only
	// construction path for a new week plan. month is the browse-grouping
	// month to record on a newly created plan.
	EnsureWeek(ctx context.Context, uid, weekKey string, month int) (*domain.WeekPlan, error)
	// LoadWeek ensures the week exists and makes it the session's active plan.
	LoadWeek(ctx context.Context, uid, weekKey string, month int) (*domain.WeekPlan, error)
	// Active returns the currently loaded plan, or nil.
	Active() *domain.WeekPlan
	// ReplaceActive swaps the in-memory active plan wholesale. Used after a
	// copy lands on the loaded week so the session reflects it without a
	// reload; ignored when the session has no plan or the key differs.
	ReplaceActive(p *domain.WeekPlan)
	// ListInMonth returns the user's stored plans for a calendar month,
	// ascending by start date.
	ListInMonth(ctx context.Context, uid string, year, month int) ([]*domain.WeekPlan, error)

	AddItem(ctx context.Context, uid, dayISO string, item domain.WorkoutItem) error
	UpdateItem(ctx context.Context, uid, dayISO string, item domain.WorkoutItem) error
	DeleteItem(ctx context.Context, uid, dayISO, itemID string) error
	SetItemProgress(ctx context.Context, uid, dayISO, itemID string, progress float64) error
	// SetDayProgress sets every item of the day to one value ("mark day
	// done/undone"). Other days are untouched.
	SetDayProgress(ctx context.Context, uid, dayISO string, progress float64) error
	SetDayTitle(ctx context.Context, uid, dayISO, title string) error
}

// CopyService duplicates week or day content into target weeks.
type CopyService interface {
	// CopyWeek copies the source week into each target week under the given
	// options. The source's own key is skipped. Returns the number of weeks
	// written.
	CopyWeek(ctx context.Context, uid, sourceWeekKey string, targetWeekKeys []string, opts copier.Options) (int, error)
	// CopyDay copies the day with sourceDayISO onto the target week's day
	// with the given ISO weekday (1..7), creating the target week if needed.
	CopyDay(ctx context.Context, uid, sourceDayISO, targetWeekKey string, targetWeekday int, opts copier.Options) error
}

// ExerciseService maintains the per-user exercise name history behind
// autocomplete.
type ExerciseService interface {
	RecordUsage(ctx context.Context, uid, name string) error
	Search(ctx context.Context, uid, query string, limit int) ([]string, error)
	// SeedDefaults loads the built-in exercise catalog for a user who has no
	// history yet.
	SeedDefaults(ctx context.Context, uid string) error
}
