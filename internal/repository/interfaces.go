package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fitweekapp/fitweek/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// WeekPlanRepo persists week plans keyed by (uid, weekKey).
type WeekPlanRepo interface {
	Get(ctx context.Context, key domain.PlanKey) (*domain.WeekPlan, error)
	// Put is an idempotent upsert that fully replaces the record.
	Put(ctx context.Context, p *domain.WeekPlan) error
	Delete(ctx context.Context, key domain.PlanKey) error
	// ListInMonth returns the user's plans whose denormalized (year, month)
	// match, ascending by start date.
	ListInMonth(ctx context.Context, uid string, year, month int) ([]*domain.WeekPlan, error)
}

// ExerciseRepo tracks per-user exercise name usage for autocomplete ranking.
type ExerciseRepo interface {
	// RecordUsage upserts the normalized name, bumping its usage count and
	// recency. Safe to call on every item add.
	RecordUsage(ctx context.Context, uid, name string, now time.Time) error
	// Search returns ranked names: prefix matches before substring matches,
	// then by usage count descending, recency descending, name ascending.
	// An empty query returns the most used names.
	Search(ctx context.Context, uid, query string, limit int) ([]string, error)
	// Seed inserts the given names with zero usage unless the user already
	// has any records.
	Seed(ctx context.Context, uid string, names []string, now time.Time) error
}
