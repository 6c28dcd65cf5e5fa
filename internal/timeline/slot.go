package timeline

import (
	"time"

	"proof-timeline/pkg/datemath"
)

// DefaultMaxIterations bounds the fixed-point sweep of FindNextFreeSlot.
const DefaultMaxIterations = 100

// FindNextFreeSlot returns the earliest start at or after targetStart where a
// slot of the given duration overlaps none of the intervals on targetStart's
// calendar day. Intervals owned by excludeOwnerID are ignored.
//
// The function is pure. A sweep that moves the candidate must be confirmed by
// a clean sweep; when maxIterations sweeps pass without one, the last
// candidate is returned together with ErrConflictResolutionExhausted.
func FindNextFreeSlot(targetStart time.Time, duration time.Duration, intervals []Interval, excludeOwnerID string, maxIterations int) (time.Time, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	day := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if excludeOwnerID != "" && iv.OwnerID == excludeOwnerID {
			continue
		}
		if !datemath.SameDay(iv.Start, targetStart, targetStart.Location()) {
			continue
		}
		day = append(day, iv)
	}
	sortIntervals(day)

	candidate := Interval{Start: targetStart, End: targetStart.Add(duration)}
	for i := 0; i < maxIterations; i++ {
		moved := false
		for _, iv := range day {
			if Overlaps(candidate, iv) {
				candidate.Start = iv.End
				candidate.End = candidate.Start.Add(duration)
				moved = true
			}
		}
		if !moved {
			return candidate.Start, nil
		}
	}

	return candidate.Start, ErrConflictResolutionExhausted
}
