package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"proof-timeline/internal/settlement"
	repo "proof-timeline/internal/settlement/repository"
)

// Insert relies on the primary key: a conflicting session id inserts nothing.
func (r *implRepository) Insert(ctx context.Context, rec settlement.Record) error {
	const query = `
		INSERT INTO settlements (session_id, task_id, amount, kind, reason, settled_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		rec.SessionID, rec.TaskID, rec.Amount, string(rec.Kind), rec.Reason, rec.SettledAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return repo.ErrFailedToInsert
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("Insert"), err)
		return repo.ErrFailedToInsert
	}
	if n == 0 {
		return repo.ErrDuplicate
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, sessionID string) (settlement.Record, error) {
	const query = `
		SELECT session_id, task_id, amount, kind, reason, settled_at
		FROM settlements WHERE session_id = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return settlement.Record{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return settlement.Record{}, repo.ErrFailedToGet
	}
	return rec, nil
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]settlement.Record, error) {
	const query = `
		SELECT session_id, task_id, amount, kind, reason, settled_at
		FROM settlements WHERE task_id = ?
		ORDER BY settled_at ASC, session_id ASC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByTask"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []settlement.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListByTask"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListByTask"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE session_id = ?`, sessionID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (settlement.Record, error) {
	var (
		rec       settlement.Record
		kind      string
		reason    sql.NullString
		settledAt string
	)
	if err := s.Scan(&rec.SessionID, &rec.TaskID, &rec.Amount, &kind, &reason, &settledAt); err != nil {
		return settlement.Record{}, err
	}
	rec.Kind = settlement.Kind(kind)
	rec.Reason = reason.String
	t, err := time.Parse(time.RFC3339Nano, settledAt)
	if err != nil {
		return settlement.Record{}, err
	}
	rec.SettledAt = t
	return rec, nil
}
