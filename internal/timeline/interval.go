package timeline

import (
	"sort"
	"time"

	"proof-timeline/internal/model"
)

// Interval is a half-open [Start, End) range owned by one task.
type Interval struct {
	Start   time.Time
	End     time.Time
	OwnerID string
}

// Overlaps reports whether a and b share any instant. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// intervalOf derives a task's interval. Tasks without a planned end use
// fallback as their length, whatever their DurationMinutes says; ok is false
// when no length can be derived.
func intervalOf(t model.Task, fallback time.Duration) (Interval, bool) {
	d := t.Duration()
	if !t.HasEnd() {
		d = fallback
	}
	if d <= 0 {
		return Interval{}, false
	}
	return Interval{Start: t.ScheduledStart, End: t.ScheduledStart.Add(d), OwnerID: t.ID}, true
}

// sortIntervals orders by start, then end, then owner so equal inputs always
// produce the same order.
func sortIntervals(ivs []Interval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.OwnerID < b.OwnerID
	})
}
