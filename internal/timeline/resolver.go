package timeline

import (
	"errors"
	"sort"
	"time"

	"proof-timeline/internal/model"
	"proof-timeline/pkg/datemath"
)

// ResolveOptions tunes ResolveStartTimeChange.
type ResolveOptions struct {
	// MaxIterations caps each slot search. Zero means DefaultMaxIterations.
	MaxIterations int
	// UnscheduledDuration is the length assumed for tasks without a planned
	// end. Zero keeps such tasks out of conflict detection.
	UnscheduledDuration time.Duration
}

// Shift records one task moved by the resolver.
type Shift struct {
	TaskID    string
	FromStart time.Time
	ToStart   time.Time
	Duration  time.Duration
	// Exhausted is set when the slot search hit its cap and the task was
	// placed at the requested time instead.
	Exhausted bool
}

// Resolution is the outcome of ResolveStartTimeChange.
type Resolution struct {
	// Tasks is a new collection in input order with all updates applied.
	Tasks []model.Task
	// Mover is the task whose actual start changed, after the update.
	Mover model.Task
	// Shifts lists displaced tasks in placement order.
	Shifts []Shift
	// Unscheduled lists same-day tasks skipped because they have no end
	// and no UnscheduledDuration was given.
	Unscheduled []string
}

// Fallbacks returns the shifts that hit the iteration cap.
func (r Resolution) Fallbacks() []Shift {
	var out []Shift
	for _, s := range r.Shifts {
		if s.Exhausted {
			out = append(out, s)
		}
	}
	return out
}

// ResolveStartTimeChange moves task taskID to actualStart and re-places every
// active task on the same calendar day that now overlaps it. Displaced tasks
// are handled in ascending original start, each searched from the mover's new
// end against the intervals already fixed in this cascade, so two displaced
// tasks never land on each other. Durations are preserved. The input slice is
// not modified.
func ResolveStartTimeChange(taskID string, actualStart time.Time, tasks []model.Task, opt ResolveOptions) (Resolution, error) {
	if actualStart.IsZero() {
		return Resolution{}, ErrInvalidActualStart
	}

	out := make([]model.Task, len(tasks))
	moverIdx := -1
	for i, t := range tasks {
		out[i] = t.Clone()
		if t.ID == taskID {
			moverIdx = i
		}
	}
	if moverIdx < 0 {
		return Resolution{}, ErrTaskNotFound
	}

	mover := &out[moverIdx]
	moverIv, ok := intervalOf(*mover, opt.UnscheduledDuration)
	if !ok {
		return Resolution{}, ErrMissingDuration
	}
	duration := moverIv.Duration()

	start := actualStart
	mover.ScheduledStart = start
	if mover.HasEnd() {
		mover.ScheduledEnd = start.Add(duration)
	}
	mover.ActualStart = &start
	moverIv = Interval{Start: start, End: start.Add(duration), OwnerID: mover.ID}

	res := Resolution{}
	loc := actualStart.Location()

	// Split the day into tasks that stay put and tasks that must move.
	fixed := []Interval{moverIv}
	var displaced []int
	for i := range out {
		t := out[i]
		if i == moverIdx || t.Status.Settled() {
			continue
		}
		if !datemath.SameDay(t.ScheduledStart, actualStart, loc) {
			continue
		}
		iv, ok := intervalOf(t, opt.UnscheduledDuration)
		if !ok {
			res.Unscheduled = append(res.Unscheduled, t.ID)
			continue
		}
		if Overlaps(iv, moverIv) {
			displaced = append(displaced, i)
			continue
		}
		fixed = append(fixed, iv)
	}

	sort.SliceStable(displaced, func(a, b int) bool {
		ta, tb := out[displaced[a]], out[displaced[b]]
		if !ta.ScheduledStart.Equal(tb.ScheduledStart) {
			return ta.ScheduledStart.Before(tb.ScheduledStart)
		}
		return ta.ID < tb.ID
	})

	for _, i := range displaced {
		t := &out[i]
		iv, _ := intervalOf(*t, opt.UnscheduledDuration)
		d := iv.Duration()

		newStart, err := FindNextFreeSlot(moverIv.End, d, fixed, t.ID, opt.MaxIterations)
		exhausted := errors.Is(err, ErrConflictResolutionExhausted)
		if exhausted {
			newStart = moverIv.End
		}

		res.Shifts = append(res.Shifts, Shift{
			TaskID:    t.ID,
			FromStart: t.ScheduledStart,
			ToStart:   newStart,
			Duration:  d,
			Exhausted: exhausted,
		})

		t.ScheduledStart = newStart
		if t.HasEnd() {
			t.ScheduledEnd = newStart.Add(d)
		}
		fixed = append(fixed, Interval{Start: newStart, End: newStart.Add(d), OwnerID: t.ID})
	}

	res.Tasks = out
	res.Mover = out[moverIdx]
	return res, nil
}
