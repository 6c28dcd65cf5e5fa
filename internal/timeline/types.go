package timeline

import (
	"time"

	"proof-timeline/internal/model"
)

// ListDayInput selects a day by expression ("today", "tomorrow", "2024-05-01", ...).
type ListDayInput struct {
	Day string
}

type ListDayOutput struct {
	Day   time.Time
	Tasks []model.Task
}

// CreateTaskInput is the input for adding a task to the timeline.
type CreateTaskInput struct {
	Title                string
	ScheduledStart       time.Time
	DurationMinutes      int
	WithoutEnd           bool
	VerificationStart    *model.VerificationConfig
	VerificationComplete *model.VerificationConfig
	RewardCoins          int
	MirrorToCalendar     bool
}

type ChangeActualStartInput struct {
	TaskID      string
	ActualStart time.Time
}

// ChangeActualStartOutput describes the persisted outcome of a resolution.
type ChangeActualStartOutput struct {
	Task        model.Task
	Shifts      []Shift
	Unscheduled []string
	// Mirrored counts calendar events moved along with their tasks.
	Mirrored int
}
