package http

import (
	"errors"
	"time"

	"proof-timeline/internal/model"
	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/response"
)

// --- Request DTOs ---

type listDayReq struct {
	Day string `form:"day"`
}

func (r listDayReq) toInput() timeline.ListDayInput {
	return timeline.ListDayInput{Day: r.Day}
}

// ---

type createTaskReq struct {
	Title                string                    `json:"title"            binding:"required,max=255"`
	ScheduledStart       time.Time                 `json:"scheduled_start"  binding:"required"`
	DurationMinutes      int                       `json:"duration_minutes" binding:"min=0,max=1440"`
	WithoutEnd           bool                      `json:"without_end"`
	VerificationStart    *model.VerificationConfig `json:"verification_start"`
	VerificationComplete *model.VerificationConfig `json:"verification_complete"`
	RewardCoins          int                       `json:"reward_coins"     binding:"min=0"`
	MirrorToCalendar     bool                      `json:"mirror_to_calendar"`
}

func (r createTaskReq) validate() error {
	if !r.WithoutEnd && r.DurationMinutes == 0 {
		return errors.New("duration_minutes is required unless without_end is set")
	}
	return nil
}

func (r createTaskReq) toInput() timeline.CreateTaskInput {
	return timeline.CreateTaskInput{
		Title:                r.Title,
		ScheduledStart:       r.ScheduledStart,
		DurationMinutes:      r.DurationMinutes,
		WithoutEnd:           r.WithoutEnd,
		VerificationStart:    r.VerificationStart,
		VerificationComplete: r.VerificationComplete,
		RewardCoins:          r.RewardCoins,
		MirrorToCalendar:     r.MirrorToCalendar,
	}
}

// ---

type actualStartReq struct {
	ID          string    `json:"-"` // populated from URI param
	ActualStart time.Time `json:"actual_start" binding:"required"`
}

func (r actualStartReq) toInput() timeline.ChangeActualStartInput {
	return timeline.ChangeActualStartInput{
		TaskID:      r.ID,
		ActualStart: r.ActualStart,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                   string                    `json:"id"`
	Title                string                    `json:"title"`
	Status               string                    `json:"status"`
	ScheduledStart       time.Time                 `json:"scheduled_start"`
	ScheduledEnd         *time.Time                `json:"scheduled_end,omitempty"`
	DurationMinutes      int                       `json:"duration_minutes"`
	ActualStart          *time.Time                `json:"actual_start,omitempty"`
	ActualEnd            *time.Time                `json:"actual_end,omitempty"`
	VerificationStart    *model.VerificationConfig `json:"verification_start,omitempty"`
	VerificationComplete *model.VerificationConfig `json:"verification_complete,omitempty"`
	RewardCoins          int                       `json:"reward_coins"`
	CalendarEventID      string                    `json:"calendar_event_id,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	r := taskResp{
		ID:                   t.ID,
		Title:                t.Title,
		Status:               string(t.Status),
		ScheduledStart:       t.ScheduledStart,
		DurationMinutes:      int(t.Duration() / time.Minute),
		ActualStart:          t.ActualStart,
		ActualEnd:            t.ActualEnd,
		VerificationStart:    t.VerificationStart,
		VerificationComplete: t.VerificationComplete,
		RewardCoins:          t.RewardCoins,
		CalendarEventID:      t.CalendarEventID,
	}
	if t.HasEnd() {
		end := t.ScheduledEnd
		r.ScheduledEnd = &end
	}
	return r
}

type listDayResp struct {
	Day   response.Date `json:"day" swaggertype:"string"`
	Tasks []taskResp    `json:"tasks"`
	Count int           `json:"count"`
}

func (h *handler) newListDayResp(o timeline.ListDayOutput) listDayResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listDayResp{
		Day:   response.Date(o.Day),
		Tasks: tasks,
		Count: len(tasks),
	}
}

type shiftResp struct {
	TaskID    string    `json:"task_id"`
	FromStart time.Time `json:"from_start"`
	ToStart   time.Time `json:"to_start"`
	Exhausted bool      `json:"exhausted,omitempty"`
}

type actualStartResp struct {
	Task        taskResp    `json:"task"`
	Shifts      []shiftResp `json:"shifts"`
	Unscheduled []string    `json:"unscheduled,omitempty"`
	Mirrored    int         `json:"mirrored"`
}

func (h *handler) newActualStartResp(o timeline.ChangeActualStartOutput) actualStartResp {
	shifts := make([]shiftResp, 0, len(o.Shifts))
	for _, s := range o.Shifts {
		shifts = append(shifts, shiftResp{
			TaskID:    s.TaskID,
			FromStart: s.FromStart,
			ToStart:   s.ToStart,
			Exhausted: s.Exhausted,
		})
	}
	return actualStartResp{
		Task:        newTaskResp(o.Task),
		Shifts:      shifts,
		Unscheduled: o.Unscheduled,
		Mirrored:    o.Mirrored,
	}
}
