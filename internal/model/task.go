package model

import "time"

// TaskStatus is the lifecycle status of a task on the timeline.
type TaskStatus string

const (
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
	TaskStatusFailed     TaskStatus = "failed"
)

// Settled reports whether the task no longer takes part in conflict resolution.
func (s TaskStatus) Settled() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// VerificationConfig describes the photo proof required at one point of a task.
type VerificationConfig struct {
	Enabled  bool     `json:"enabled"`
	Keywords []string `json:"keywords"`
}

// Task is a single entry on the personal timeline.
type Task struct {
	ID              string
	Title           string
	ScheduledStart  time.Time
	ScheduledEnd    time.Time // zero when the task has no planned end
	DurationMinutes int
	Status          TaskStatus

	VerificationStart    *VerificationConfig
	VerificationComplete *VerificationConfig

	ActualStart *time.Time
	ActualEnd   *time.Time

	RewardCoins     int    // base reward for settlement, 0 = configured default
	CalendarEventID string // Google Calendar mirror, optional
}

// Duration returns the planned length of the task.
// DurationMinutes wins; otherwise the scheduled interval is used.
func (t Task) Duration() time.Duration {
	if t.DurationMinutes > 0 {
		return time.Duration(t.DurationMinutes) * time.Minute
	}
	if !t.ScheduledEnd.IsZero() && t.ScheduledEnd.After(t.ScheduledStart) {
		return t.ScheduledEnd.Sub(t.ScheduledStart)
	}
	return 0
}

// HasEnd reports whether the task has a planned end time.
func (t Task) HasEnd() bool {
	return !t.ScheduledEnd.IsZero()
}

// Clone returns a deep copy so callers can mutate the result freely.
func (t Task) Clone() Task {
	c := t
	if t.VerificationStart != nil {
		v := *t.VerificationStart
		v.Keywords = append([]string(nil), t.VerificationStart.Keywords...)
		c.VerificationStart = &v
	}
	if t.VerificationComplete != nil {
		v := *t.VerificationComplete
		v.Keywords = append([]string(nil), t.VerificationComplete.Keywords...)
		c.VerificationComplete = &v
	}
	if t.ActualStart != nil {
		v := *t.ActualStart
		c.ActualStart = &v
	}
	if t.ActualEnd != nil {
		v := *t.ActualEnd
		c.ActualEnd = &v
	}
	return c
}
