package habit

import (
	"context"
	"sync"
	"time"

	pkgLog "proof-timeline/pkg/log"
)

// Occurrence is one recorded habitual event, such as a missed capture window.
type Occurrence struct {
	Kind      string    `json:"kind"`
	TaskID    string    `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder keeps occurrences in memory.
type Recorder struct {
	mu  sync.RWMutex
	l   pkgLog.Logger
	all []Occurrence
}

func New(l pkgLog.Logger) *Recorder {
	return &Recorder{l: l}
}

func (r *Recorder) RecordOccurrence(ctx context.Context, kind, taskID string, ts time.Time) error {
	r.mu.Lock()
	r.all = append(r.all, Occurrence{Kind: kind, TaskID: taskID, Timestamp: ts})
	r.mu.Unlock()

	r.l.Infof(ctx, "habit: recorded %s for task %s at %s", kind, taskID, ts.Format(time.RFC3339))
	return nil
}

// Count returns how often kind was recorded for taskID. An empty taskID counts every task.
func (r *Recorder) Count(kind, taskID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, o := range r.all {
		if o.Kind == kind && (taskID == "" || o.TaskID == taskID) {
			n++
		}
	}
	return n
}

// Occurrences returns a copy of every occurrence, oldest first.
func (r *Recorder) Occurrences() []Occurrence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Occurrence(nil), r.all...)
}
