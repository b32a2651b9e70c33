// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

var runsSchema = []string{`
CREATE TABLE IF NOT EXISTS runs (
    id           TEXT PRIMARY KEY,
    polynomial   TEXT NOT NULL,
    coefficients BLOB,
    roots        BLOB,
    steps        TEXT NOT NULL DEFAULT '',
    evaluations  INTEGER NOT NULL DEFAULT 0,
    created_at   INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at)`,
}

// Open opens a SQLite database. The pool is limited to one connection so
// that ":memory:" databases behave as a single database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema creates the runs table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range runsSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
