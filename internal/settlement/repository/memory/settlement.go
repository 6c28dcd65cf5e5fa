package memory

import (
	"context"
	"sort"
	"sync"

	"proof-timeline/internal/settlement"
	"proof-timeline/internal/settlement/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	records map[string]settlement.Record
}

// New creates an in-process settlement Repository.
func New() repository.Repository {
	return &implRepository{records: make(map[string]settlement.Record)}
}

func (r *implRepository) Insert(ctx context.Context, rec settlement.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.SessionID]; ok {
		return repository.ErrDuplicate
	}
	r.records[rec.SessionID] = rec
	return nil
}

func (r *implRepository) Get(ctx context.Context, sessionID string) (settlement.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[sessionID]
	if !ok {
		return settlement.Record{}, repository.ErrNotFound
	}
	return rec, nil
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]settlement.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []settlement.Record
	for _, rec := range r.records {
		if rec.TaskID == taskID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SettledAt.Equal(out[j].SettledAt) {
			return out[i].SettledAt.Before(out[j].SettledAt)
		}
		return out[i].SessionID < out[j].SessionID
	})
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, sessionID)
	return nil
}
