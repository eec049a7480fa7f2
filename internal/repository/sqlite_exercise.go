package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fitweekapp/fitweek/internal/domain"
)

// SQLiteExerciseRepo implements ExerciseRepo using a SQLite database.
type SQLiteExerciseRepo struct {
	db *sql.DB
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo.
func NewSQLiteExerciseRepo(db *sql.DB) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: db}
}

func (r *SQLiteExerciseRepo) RecordUsage(ctx context.Context, uid, name string, now time.Time) error {
	norm := domain.NormalizeName(name)
	if norm == "" {
		return nil
	}
	query := `INSERT INTO exercise_names (uid, name_norm, name, count, last_used_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(uid, name_norm) DO UPDATE SET
			name = excluded.name,
			count = exercise_names.count + 1,
			last_used_at = excluded.last_used_at`
	_, err := r.db.ExecContext(ctx, query, uid, norm, strings.TrimSpace(name), now.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording exercise usage: %w", err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) Search(ctx context.Context, uid, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 8
	}
	norm := domain.NormalizeName(query)

	var rows *sql.Rows
	var err error
	if norm == "" {
		// No input: most used first.
		rows, err = r.db.QueryContext(ctx, `SELECT name FROM exercise_names
			WHERE uid = ?
			ORDER BY count DESC, last_used_at DESC, name
			LIMIT ?`, uid, limit)
	} else {
		pattern := escapeLike(norm)
		rows, err = r.db.QueryContext(ctx, `SELECT name FROM exercise_names
			WHERE uid = ? AND name_norm LIKE '%' || ? || '%' ESCAPE '\'
			ORDER BY
				CASE WHEN name_norm LIKE ? || '%' ESCAPE '\' THEN 0 ELSE 1 END,
				count DESC, last_used_at DESC, name
			LIMIT ?`, uid, pattern, pattern, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("searching exercise names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning exercise name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercise names: %w", err)
	}
	return names, nil
}

func (r *SQLiteExerciseRepo) Seed(ctx context.Context, uid string, names []string, now time.Time) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_names WHERE uid = ?`, uid).Scan(&count); err != nil {
		return fmt.Errorf("checking existing exercise names: %w", err)
	}
	if count > 0 {
		return nil
	}

	stamp := now.UTC().Format(time.RFC3339)
	for _, name := range names {
		norm := domain.NormalizeName(name)
		if norm == "" {
			continue
		}
		_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO exercise_names
			(uid, name_norm, name, count, last_used_at) VALUES (?, ?, ?, 0, ?)`,
			uid, norm, strings.TrimSpace(name), stamp)
		if err != nil {
			return fmt.Errorf("seeding exercise name %q: %w", name, err)
		}
	}
	return nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
