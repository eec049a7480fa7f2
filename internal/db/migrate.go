package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the full
// list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per (uid, week_key); the 7-day payload is stored as a
	// self-describing JSON document in the days column. year/month are
	// denormalized from the week key to serve the month-browse query.
	`CREATE TABLE IF NOT EXISTS week_plans (
		uid         TEXT NOT NULL,
		week_key    TEXT NOT NULL,
		year        INTEGER NOT NULL,
		month       INTEGER NOT NULL
		            CHECK(month BETWEEN 1 AND 12),
		week_number INTEGER NOT NULL
		            CHECK(week_number BETWEEN 1 AND 53),
		start_iso   TEXT NOT NULL,
		end_iso     TEXT NOT NULL,
		days        TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (uid, week_key)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_week_plans_month ON week_plans(uid, year, month)`,

	`CREATE TABLE IF NOT EXISTS exercise_names (
		uid          TEXT NOT NULL,
		name_norm    TEXT NOT NULL,
		name         TEXT NOT NULL,
		count        INTEGER NOT NULL DEFAULT 0,
		last_used_at TEXT NOT NULL,
		PRIMARY KEY (uid, name_norm)
	)`,
}
