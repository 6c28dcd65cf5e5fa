package verification

import (
	"context"
	"time"

	"proof-timeline/internal/matcher"
	"proof-timeline/internal/recognition"
	"proof-timeline/internal/settlement"
)

// UseCase is the verification controller.
type UseCase interface {
	// Tick opens due capture windows and times out expired ones. Running it
	// again without a state change has no effect.
	Tick(ctx context.Context) (TickResult, error)
	// Capture verifies a photo for the open window of a task.
	Capture(ctx context.Context, input CaptureInput) (CaptureOutput, error)
	// Get returns the live or finished session of (taskID, kind).
	Get(ctx context.Context, taskID string, kind Kind) (Session, error)
	// List returns every session the controller still holds.
	List(ctx context.Context) []Session
	// Discard drops a finished session once the caller has observed it.
	Discard(ctx context.Context, taskID string, kind Kind) error
	// Stop cancels every pending deadline timer.
	Stop()
}

// Recognizer classifies images. recognition.Gateway satisfies it.
type Recognizer interface {
	Classify(ctx context.Context, creds recognition.Credentials, imageBase64 string) (recognition.Result, error)
}

// KeywordMatcher turns labels into a verdict. *matcher.Matcher satisfies it.
type KeywordMatcher interface {
	Match(labels, required []string, policy matcher.Policy) matcher.Verdict
}

// Settler applies rewards and penalties. settlement.UseCase satisfies it.
type Settler interface {
	Settle(ctx context.Context, in settlement.SettleInput) (settlement.Record, error)
}

// HabitRecorder stores habitual occurrences such as missed windows.
type HabitRecorder interface {
	RecordOccurrence(ctx context.Context, kind, taskID string, ts time.Time) error
}

// Notifier emits events without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// StartHook is told when a start photo was accepted.
type StartHook func(ctx context.Context, taskID string, at time.Time)
