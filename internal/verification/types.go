package verification

import (
	"fmt"
	"time"

	"proof-timeline/internal/matcher"
	"proof-timeline/internal/recognition"
)

// Kind is the point of a task that needs photo proof.
type Kind string

const (
	KindStart      Kind = "start"
	KindCompletion Kind = "completion"
)

// ParseKind validates a kind coming from the outside.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStart, KindCompletion:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Phase is the state of a verification session.
type Phase string

const (
	PhasePending      Phase = "pending"
	PhaseWaitingStart Phase = "waiting_start"
	PhaseCapturing    Phase = "capturing"
	PhaseRecognizing  Phase = "recognizing"
	PhaseStarted      Phase = "started"
	PhaseCompleting   Phase = "completing"
	PhaseCompleted    Phase = "completed"
	PhaseFailed       Phase = "failed"
	PhaseTimedOut     Phase = "timed_out"
)

// Session is a snapshot of one verification session. ID changes on every
// attempt and is the settlement key of that attempt.
type Session struct {
	ID               string           `json:"id"`
	TaskID           string           `json:"task_id"`
	TaskTitle        string           `json:"task_title"`
	Kind             Kind             `json:"kind"`
	Phase            Phase            `json:"phase"`
	RequiredKeywords []string         `json:"required_keywords"`
	RewardCoins      int              `json:"reward_coins"`
	Anchor           time.Time        `json:"anchor"`
	WindowStart      time.Time        `json:"window_start,omitempty"`
	Deadline         time.Time        `json:"deadline,omitempty"`
	AttemptCount     int              `json:"attempt_count"`
	LastError        string           `json:"last_error,omitempty"`
	Verdict          *matcher.Verdict `json:"verdict,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Clone returns a copy that shares nothing mutable with s.
func (s Session) Clone() Session {
	c := s
	c.RequiredKeywords = append([]string(nil), s.RequiredKeywords...)
	return c
}

// Terminal reports whether the session will never change again.
func (s Session) Terminal() bool {
	return IsTerminal(s.Kind, s.Phase)
}

// EventType names a notification emitted by the controller.
type EventType string

const (
	EventWindowOpened EventType = "window_opened"
	EventVerified     EventType = "verified"
	EventRejected     EventType = "rejected"
	EventFailed       EventType = "failed"
	EventTimedOut     EventType = "timed_out"
)

// Event is a fire-and-forget notification payload.
type Event struct {
	Type      EventType `json:"type"`
	TaskID    string    `json:"task_id"`
	TaskTitle string    `json:"task_title"`
	Kind      Kind      `json:"kind"`
	SessionID string    `json:"session_id"`
	Attempt   int       `json:"attempt"`
	Message   string    `json:"message,omitempty"`
	At        time.Time `json:"at"`
}

// CaptureInput is a user photo for the open window of (TaskID, Kind).
type CaptureInput struct {
	TaskID string
	Kind   Kind
	Image  string // base64, data URI prefix allowed
}

// CaptureOutput is the result of one capture. A rejected photo is not an
// error: Success is false and the session shows what happens next.
type CaptureOutput struct {
	Session       Session
	Success       bool
	Verdict       matcher.Verdict
	Labels        []recognition.Label
	SettledAmount int
	Reason        string
}

// TickResult counts what one tick changed.
type TickResult struct {
	Opened   int
	TimedOut int
	Dropped  int // open sessions whose task was rescheduled, cancelled or removed
}
