package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"proof-timeline/internal/settlement/repository"
	"proof-timeline/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the sqlite database at path and prepares the schema.
func Open(ctx context.Context, path string, l log.Logger) (repository.Repository, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settlement db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping settlement db: %w", err)
	}
	r, err := New(ctx, db, l)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return r, db, nil
}

// New creates a sqlite-backed Repository on an open database.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("settlement/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.init(ctx); err != nil {
		return nil, fmt.Errorf("failed to init settlement schema: %w", err)
	}
	return r, nil
}

func (r *implRepository) init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS settlements (
	session_id TEXT PRIMARY KEY,
	task_id TEXT NOT NULL,
	amount INTEGER NOT NULL,
	kind TEXT NOT NULL,
	reason TEXT,
	settled_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_settlements_task_id ON settlements(task_id);
`)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settlement/repository/sqlite.%s", method)
}
