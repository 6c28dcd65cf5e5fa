package habit_test

import (
	"context"
	"testing"
	"time"

	"proof-timeline/internal/habit"
	pkgLog "proof-timeline/pkg/log"
)

func TestRecorder(t *testing.T) {
	r := habit.New(pkgLog.NewNop())
	ts := time.Date(2024, 5, 1, 9, 2, 0, 0, time.UTC)

	r.RecordOccurrence(context.Background(), "start_timeout", "t1", ts)
	r.RecordOccurrence(context.Background(), "start_timeout", "t2", ts)
	r.RecordOccurrence(context.Background(), "completion_timeout", "t1", ts)

	if got := r.Count("start_timeout", ""); got != 2 {
		t.Errorf("Count(all) = %d, want 2", got)
	}
	if got := r.Count("start_timeout", "t1"); got != 1 {
		t.Errorf("Count(t1) = %d, want 1", got)
	}
	if len(r.Occurrences()) != 3 {
		t.Errorf("unexpected occurrences: %+v", r.Occurrences())
	}
}
