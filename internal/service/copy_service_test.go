package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitweekapp/fitweek/internal/copier"
	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/fitweekapp/fitweek/internal/repository"
	"github.com/fitweekapp/fitweek/internal/testutil"
)

func newCopyFixture(t *testing.T) (CopyService, PlannerService, repository.WeekPlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLiteWeekPlanRepo(database)
	planner := NewPlannerService(plans, nil)
	return NewCopyService(plans, planner), planner, plans
}

// loadSourceWeek loads 2026-W10 with one item on Monday and one on Wednesday.
func loadSourceWeek(t *testing.T, planner PlannerService) *domain.WeekPlan {
	t.Helper()
	ctx := context.Background()
	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Bench Press", Sets: 3, Reps: 10}))
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-04", domain.WorkoutItem{Name: "Squat", Sets: 5, Reps: 5}))
	require.NoError(t, planner.SetItemProgress(ctx, "u1", "2026-03-02",
		planner.Active().Days[0].Items[0].ID, 80))
	return planner.Active()
}

func TestCopyWeek_OverwriteCreatesTarget(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()
	src := loadSourceWeek(t, planner)

	n, err := copies.CopyWeek(ctx, "u1", "2026-W10", []string{"2026-W11"}, copier.Options{
		Mode: copier.ModeOverwrite, ResetProgress: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W11"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", got.StartISO)
	require.Len(t, got.Days[0].Items, 1)
	assert.Equal(t, "Bench Press", got.Days[0].Items[0].Name)
	assert.Equal(t, 0, got.Days[0].Items[0].Progress, "reset applies")
	assert.Equal(t, src.Days[0].Items[0].ID, got.Days[0].Items[0].ID, "week copy preserves ids")
}

func TestCopyWeek_SkipsSourceKey(t *testing.T) {
	copies, planner, _ := newCopyFixture(t)
	loadSourceWeek(t, planner)

	n, err := copies.CopyWeek(context.Background(), "u1", "2026-W10", []string{"2026-W10"}, copier.Options{
		Mode: copier.ModeOverwrite,
	})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCopyWeek_MergeAppendsIntoExisting(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()
	loadSourceWeek(t, planner)

	// Build an existing target with its own Monday item.
	_, err := planner.LoadWeek(ctx, "u1", "2026-W11", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-09", domain.WorkoutItem{Name: "Row"}))

	n, err := copies.CopyWeek(ctx, "u1", "2026-W10", []string{"2026-W11"}, copier.Options{
		Mode: copier.ModeMerge,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W11"})
	require.NoError(t, err)
	names := []string{}
	for _, it := range got.Days[0].Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Row", "Bench Press"}, names, "existing first, incoming appended")
}

func TestCopyWeek_MergeRefreshesActiveTarget(t *testing.T) {
	copies, planner, _ := newCopyFixture(t)
	ctx := context.Background()
	loadSourceWeek(t, planner)

	// Make the target week the active one, as when browsing it in the UI.
	_, err := planner.LoadWeek(ctx, "u1", "2026-W11", 3)
	require.NoError(t, err)

	_, err = copies.CopyWeek(ctx, "u1", "2026-W10", []string{"2026-W11"}, copier.Options{
		Mode: copier.ModeMerge,
	})
	require.NoError(t, err)

	active := planner.Active()
	assert.Equal(t, "2026-W11", active.WeekKey)
	require.Len(t, active.Days[0].Items, 1, "session sees the merge without a reload")
	assert.Equal(t, "Bench Press", active.Days[0].Items[0].Name)
}

func TestCopyWeek_MissingSource(t *testing.T) {
	copies, _, _ := newCopyFixture(t)

	_, err := copies.CopyWeek(context.Background(), "u1", "2026-W30", []string{"2026-W31"}, copier.Options{
		Mode: copier.ModeOverwrite,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCopyDay_OverwriteOntoFreshWeek(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()
	src := loadSourceWeek(t, planner)
	srcID := src.Days[0].Items[0].ID

	err := copies.CopyDay(ctx, "u1", "2026-03-02", "2026-W12", 3, copier.Options{
		Mode: copier.ModeOverwrite, ResetProgress: true,
	})
	require.NoError(t, err)

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W12"})
	require.NoError(t, err)
	day := got.DayByWeekday(3)
	require.NotNil(t, day)
	require.Len(t, day.Items, 1)
	assert.Equal(t, "Bench Press", day.Items[0].Name)
	assert.NotEqual(t, srcID, day.Items[0].ID, "day copy generates fresh ids")
	assert.Equal(t, 0, day.Items[0].Progress)
}

func TestCopyDay_MergeDropsNameCollisions(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()

	// Source Monday has Squat and Bench.
	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Bench"}))

	// Target Monday of next week already has a Squat at 40%.
	_, err = planner.LoadWeek(ctx, "u1", "2026-W11", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-09", domain.WorkoutItem{Name: "Squat"}))
	existingID := planner.Active().Days[0].Items[0].ID
	require.NoError(t, planner.SetItemProgress(ctx, "u1", "2026-03-09", existingID, 40))

	err = copies.CopyDay(ctx, "u1", "2026-03-02", "2026-W11", 1, copier.Options{
		Mode: copier.ModeMerge, ResetProgress: true,
	})
	require.NoError(t, err)

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W11"})
	require.NoError(t, err)
	items := got.Days[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, existingID, items[0].ID, "existing Squat untouched")
	assert.Equal(t, 40, items[0].Progress)
	assert.Equal(t, "Bench", items[1].Name)
	assert.Equal(t, 0, items[1].Progress)

	// The active plan (the target week) was refreshed in place.
	assert.Len(t, planner.Active().Days[0].Items, 2)
}

func TestCopyDay_WithinSameWeek(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()
	loadSourceWeek(t, planner)

	// Monday's content onto Friday of the same week.
	err := copies.CopyDay(ctx, "u1", "2026-03-02", "2026-W10", 5, copier.Options{
		Mode: copier.ModeOverwrite,
	})
	require.NoError(t, err)

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W10"})
	require.NoError(t, err)
	require.Len(t, got.Days[4].Items, 1)
	assert.Equal(t, "Bench Press", got.Days[4].Items[0].Name)
	require.Len(t, got.Days[0].Items, 1, "source day keeps its content")

	active := planner.Active()
	assert.Len(t, active.Days[4].Items, 1, "active week refreshed")
}

func TestCopyDay_InvalidWeekdayIsNoop(t *testing.T) {
	copies, planner, plans := newCopyFixture(t)
	ctx := context.Background()
	loadSourceWeek(t, planner)

	err := copies.CopyDay(ctx, "u1", "2026-03-02", "2026-W12", 8, copier.Options{
		Mode: copier.ModeOverwrite,
	})
	require.NoError(t, err, "out-of-range weekday is silently ignored")

	got, err := plans.Get(ctx, domain.PlanKey{UID: "u1", WeekKey: "2026-W12"})
	require.NoError(t, err)
	for _, d := range got.Days {
		assert.Empty(t, d.Items)
	}
}
