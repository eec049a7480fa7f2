package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fitweekapp/fitweek/internal/domain"
)

// weekPlanColumns is the canonical SELECT column list for week_plans.
const weekPlanColumns = `uid, week_key, year, month, week_number, start_iso, end_iso, days, updated_at`

// SQLiteWeekPlanRepo implements WeekPlanRepo using a SQLite database.
type SQLiteWeekPlanRepo struct {
	db *sql.DB
}

// NewSQLiteWeekPlanRepo creates a new SQLiteWeekPlanRepo.
func NewSQLiteWeekPlanRepo(db *sql.DB) *SQLiteWeekPlanRepo {
	return &SQLiteWeekPlanRepo{db: db}
}

func (r *SQLiteWeekPlanRepo) Get(ctx context.Context, key domain.PlanKey) (*domain.WeekPlan, error) {
	query := `SELECT ` + weekPlanColumns + ` FROM week_plans WHERE uid = ? AND week_key = ?`
	row := r.db.QueryRowContext(ctx, query, key.UID, key.WeekKey)
	p, err := scanWeekPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("week plan %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("getting week plan: %w", err)
	}
	return p, nil
}

func (r *SQLiteWeekPlanRepo) Put(ctx context.Context, p *domain.WeekPlan) error {
	days, err := json.Marshal(p.Days)
	if err != nil {
		return fmt.Errorf("encoding days: %w", err)
	}
	query := `INSERT INTO week_plans (` + weekPlanColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid, week_key) DO UPDATE SET
			year = excluded.year,
			month = excluded.month,
			week_number = excluded.week_number,
			start_iso = excluded.start_iso,
			end_iso = excluded.end_iso,
			days = excluded.days,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.UID,
		p.WeekKey,
		p.Year,
		p.Month,
		p.WeekNumber,
		p.StartISO,
		p.EndISO,
		string(days),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting week plan: %w", err)
	}
	return nil
}

func (r *SQLiteWeekPlanRepo) Delete(ctx context.Context, key domain.PlanKey) error {
	query := `DELETE FROM week_plans WHERE uid = ? AND week_key = ?`
	if _, err := r.db.ExecContext(ctx, query, key.UID, key.WeekKey); err != nil {
		return fmt.Errorf("deleting week plan: %w", err)
	}
	return nil
}

func (r *SQLiteWeekPlanRepo) ListInMonth(ctx context.Context, uid string, year, month int) ([]*domain.WeekPlan, error) {
	query := `SELECT ` + weekPlanColumns + ` FROM week_plans
		WHERE uid = ? AND year = ? AND month = ?
		ORDER BY start_iso`
	rows, err := r.db.QueryContext(ctx, query, uid, year, month)
	if err != nil {
		return nil, fmt.Errorf("listing week plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.WeekPlan
	for rows.Next() {
		p, err := scanWeekPlan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning week plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating week plans: %w", err)
	}
	return plans, nil
}

// scanWeekPlan scans one week_plans row via the given Scan function.
func scanWeekPlan(scan func(dest ...any) error) (*domain.WeekPlan, error) {
	var p domain.WeekPlan
	var daysJSON, updatedAtStr string

	err := scan(
		&p.UID, &p.WeekKey, &p.Year, &p.Month, &p.WeekNumber,
		&p.StartISO, &p.EndISO, &daysJSON, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(daysJSON), &p.Days); err != nil {
		return nil, fmt.Errorf("decoding days: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
