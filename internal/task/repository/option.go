package repository

import (
	"time"

	"proof-timeline/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	ID                   string // optional, generated when empty
	Title                string
	ScheduledStart       time.Time
	DurationMinutes      int
	WithoutEnd           bool // leave ScheduledEnd unset
	VerificationStart    *model.VerificationConfig
	VerificationComplete *model.VerificationConfig
	RewardCoins          int
	CalendarEventID      string
}

// ListTasksOptions filters tasks by calendar day and status.
type ListTasksOptions struct {
	Day      time.Time          // any instant of the wanted day; zero lists everything
	Location *time.Location     // day boundary timezone, defaults to Day's location
	Statuses []model.TaskStatus // empty means all
}
