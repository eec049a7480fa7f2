package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/fitweekapp/fitweek/internal/repository"
	"github.com/fitweekapp/fitweek/internal/testutil"
)

func newPlannerFixture(t *testing.T) (PlannerService, repository.WeekPlanRepo, ExerciseService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLiteWeekPlanRepo(database)
	exercises := NewExerciseService(repository.NewSQLiteExerciseRepo(database))
	return NewPlannerService(plans, exercises), plans, exercises
}

func TestEnsureWeek_CreatesSkeleton(t *testing.T) {
	planner, plans, _ := newPlannerFixture(t)
	ctx := context.Background()

	p, err := planner.EnsureWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)

	assert.Equal(t, "u1", p.UID)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, 3, p.Month)
	assert.Equal(t, 10, p.WeekNumber)
	assert.Equal(t, "2026-03-02", p.StartISO)
	assert.Equal(t, "2026-03-08", p.EndISO)
	require.Len(t, p.Days, 7)
	for i, d := range p.Days {
		assert.Equal(t, i+1, d.Weekday)
		assert.Empty(t, d.Items)
	}

	// The skeleton is persisted, not just returned.
	stored, err := plans.Get(ctx, p.Key())
	require.NoError(t, err)
	assert.Equal(t, p.Days, stored.Days)
}

func TestEnsureWeek_ReturnsExisting(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	first, err := planner.EnsureWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	_, err = planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.SetDayTitle(ctx, "u1", "2026-03-02", "Push"))

	again, err := planner.EnsureWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	assert.Equal(t, "Push", again.Days[0].Title, "ensure must not rebuild an existing plan")
	assert.Equal(t, first.WeekKey, again.WeekKey)
}

func TestEnsureWeek_DerivesMonthWhenUnset(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)

	p, err := planner.EnsureWeek(context.Background(), "u1", "2026-W01", 0)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Month, "2026-W01 starts 2025-12-29")
}

func TestEnsureWeek_InvalidKey(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)

	_, err := planner.EnsureWeek(context.Background(), "u1", "garbage", 1)
	assert.Error(t, err)
}

func TestMutationsRequireActivePlan(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	err := planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"})
	assert.ErrorIs(t, err, ErrNoActivePlan)
	err = planner.SetItemProgress(ctx, "u1", "2026-03-02", "x", 50)
	assert.ErrorIs(t, err, ErrNoActivePlan)
}

func TestAddItem(t *testing.T) {
	planner, plans, exercises := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)

	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{
		Name: "Bench Press", Sets: 3, Reps: 10, Progress: 77,
	}))

	active := planner.Active()
	require.Len(t, active.Days[0].Items, 1)
	got := active.Days[0].Items[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 0, got.Progress, "new items always start at 0%")

	stored, err := plans.Get(ctx, active.Key())
	require.NoError(t, err)
	assert.Equal(t, active.Days, stored.Days)

	// The add fed the autocomplete history.
	names, err := exercises.Search(ctx, "u1", "bench", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press"}, names)
}

func TestAddItem_RejectsBlankName(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)

	err = planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Empty(t, planner.Active().Days[0].Items, "no partial state change")
}

func TestAddItem_UnknownDayIsNoop(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	before := planner.Active()

	require.NoError(t, planner.AddItem(ctx, "u1", "2026-04-01", domain.WorkoutItem{Name: "Squat"}))
	assert.Same(t, before, planner.Active(), "no-op must not replace the active plan")
}

func TestUpdateItem(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	id := planner.Active().Days[0].Items[0].ID

	require.NoError(t, planner.UpdateItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{
		ID: id, Name: "Front Squat", Sets: 5, Reps: 3, Weight: 100, Progress: 120,
	}))

	got := planner.Active().Days[0].Items[0]
	assert.Equal(t, "Front Squat", got.Name)
	assert.Equal(t, 100, got.Progress, "progress clamps on update")

	// Unknown id: silent no-op.
	require.NoError(t, planner.UpdateItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{ID: "nope", Name: "X"}))
	assert.Len(t, planner.Active().Days[0].Items, 1)
}

func TestDeleteItem(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Lunge"}))
	id := planner.Active().Days[0].Items[0].ID

	require.NoError(t, planner.DeleteItem(ctx, "u1", "2026-03-02", id))
	items := planner.Active().Days[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Lunge", items[0].Name)

	require.NoError(t, planner.DeleteItem(ctx, "u1", "2026-03-02", "missing"))
	assert.Len(t, planner.Active().Days[0].Items, 1)
}

func TestSetItemProgress_Clamps(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	id := planner.Active().Days[0].Items[0].ID

	require.NoError(t, planner.SetItemProgress(ctx, "u1", "2026-03-02", id, 150))
	assert.Equal(t, 100, planner.Active().Days[0].Items[0].Progress)

	require.NoError(t, planner.SetItemProgress(ctx, "u1", "2026-03-02", id, -5))
	assert.Equal(t, 0, planner.Active().Days[0].Items[0].Progress)
}

func TestSetDayProgress_DoesNotTouchOtherDays(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	_, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Lunge"}))
	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-03", domain.WorkoutItem{Name: "Bench Press"}))

	require.NoError(t, planner.SetDayProgress(ctx, "u1", "2026-03-02", 100))
	for _, it := range planner.Active().Days[0].Items {
		assert.Equal(t, 100, it.Progress)
	}
	assert.Equal(t, 0, planner.Active().Days[1].Items[0].Progress)

	require.NoError(t, planner.SetDayProgress(ctx, "u1", "2026-03-02", 0))
	for _, it := range planner.Active().Days[0].Items {
		assert.Equal(t, 0, it.Progress)
	}
}

// failingPlanRepo wraps a WeekPlanRepo and fails every Put.
type failingPlanRepo struct {
	repository.WeekPlanRepo
}

func (f *failingPlanRepo) Put(ctx context.Context, p *domain.WeekPlan) error {
	return errors.New("disk full")
}

func TestMutation_PersistFailureKeepsOldState(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLiteWeekPlanRepo(database)
	ctx := context.Background()

	// Load through a healthy repo first, then swap in a failing one.
	healthy := NewPlannerService(plans, nil)
	loaded, err := healthy.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)

	broken := NewPlannerService(&failingPlanRepo{WeekPlanRepo: plans}, nil).(*plannerService)
	broken.active = loaded

	err = broken.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"})
	require.Error(t, err)
	assert.Same(t, loaded, broken.Active(), "failed persist must not adopt the mutated copy")
	assert.Empty(t, broken.Active().Days[0].Items)

	stored, err := plans.Get(ctx, loaded.Key())
	require.NoError(t, err)
	assert.Empty(t, stored.Days[0].Items)
}

func TestUpdatedAtAdvancesOnMutation(t *testing.T) {
	planner, _, _ := newPlannerFixture(t)
	ctx := context.Background()

	loaded, err := planner.LoadWeek(ctx, "u1", "2026-W10", 3)
	require.NoError(t, err)
	before := loaded.UpdatedAt

	require.NoError(t, planner.AddItem(ctx, "u1", "2026-03-02", domain.WorkoutItem{Name: "Squat"}))
	assert.False(t, planner.Active().UpdatedAt.Before(before))
	assert.NotSame(t, loaded, planner.Active())
}
