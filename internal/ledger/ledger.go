package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	pkgLog "proof-timeline/pkg/log"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Entry is one movement of the coin balance.
type Entry struct {
	Amount    int       `json:"amount"` // negative for debits
	Reason    string    `json:"reason"`
	TaskID    string    `json:"task_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger is an in-process coin wallet. The balance may go negative.
type Ledger struct {
	mu      sync.RWMutex
	l       pkgLog.Logger
	balance int
	entries []Entry
	now     func() time.Time
}

// New creates a ledger with an opening balance.
func New(l pkgLog.Logger, opening int) *Ledger {
	return &Ledger{l: l, balance: opening, now: time.Now}
}

func (lg *Ledger) Credit(ctx context.Context, amount int, reason, taskID, title string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	lg.apply(ctx, amount, reason, taskID, title)
	return nil
}

func (lg *Ledger) Debit(ctx context.Context, amount int, reason, taskID, title string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	lg.apply(ctx, -amount, reason, taskID, title)
	return nil
}

func (lg *Ledger) apply(ctx context.Context, delta int, reason, taskID, title string) {
	lg.mu.Lock()
	lg.balance += delta
	lg.entries = append(lg.entries, Entry{
		Amount:    delta,
		Reason:    reason,
		TaskID:    taskID,
		Title:     title,
		CreatedAt: lg.now(),
	})
	balance := lg.balance
	lg.mu.Unlock()

	lg.l.Infof(ctx, "ledger: %+d for %q (%s), balance %d", delta, title, reason, balance)
}

// Balance returns the current balance.
func (lg *Ledger) Balance() int {
	lg.mu.RLock()
	defer lg.mu.RUnlock()
	return lg.balance
}

// Entries returns a copy of every movement, oldest first.
func (lg *Ledger) Entries() []Entry {
	lg.mu.RLock()
	defer lg.mu.RUnlock()
	return append([]Entry(nil), lg.entries...)
}
