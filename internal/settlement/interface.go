package settlement

import "context"

// UseCase applies rewards and penalties at most once per session.
type UseCase interface {
	// Settle computes the amount for in and moves it through the ledger.
	// A second call for the same SessionID returns the first record and ErrAlreadySettled.
	Settle(ctx context.Context, in SettleInput) (Record, error)
	// ListByTask returns the settlements of one task, oldest first.
	ListByTask(ctx context.Context, taskID string) ([]Record, error)
}

// Ledger is the currency collaborator.
type Ledger interface {
	Credit(ctx context.Context, amount int, reason, taskID, title string) error
	Debit(ctx context.Context, amount int, reason, taskID, title string) error
}
