package repository

import (
	"context"

	"proof-timeline/internal/settlement"
)

// Repository stores settlement records keyed by session id.
type Repository interface {
	// Insert stores rec. It returns ErrDuplicate when the session id already exists.
	Insert(ctx context.Context, rec settlement.Record) error
	// Get returns ErrNotFound when no record exists for sessionID.
	Get(ctx context.Context, sessionID string) (settlement.Record, error)
	ListByTask(ctx context.Context, taskID string) ([]settlement.Record, error)
	// Delete removes a record whose ledger movement could not be applied.
	Delete(ctx context.Context, sessionID string) error
}
