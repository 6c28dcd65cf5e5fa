package timeline

import (
	"errors"
	"testing"
	"time"
)

func TestFindNextFreeSlot(t *testing.T) {
	tests := []struct {
		name      string
		target    time.Time
		duration  time.Duration
		intervals []Interval
		exclude   string
		want      time.Time
	}{
		{
			name:      "Free target",
			target:    at(9, 0),
			duration:  30 * time.Minute,
			intervals: []Interval{{Start: at(10, 0), End: at(11, 0), OwnerID: "a"}},
			want:      at(9, 0),
		},
		{
			name:      "Placed after occupant",
			target:    at(9, 0),
			duration:  30 * time.Minute,
			intervals: []Interval{{Start: at(9, 0), End: at(9, 30), OwnerID: "T"}},
			want:      at(9, 30),
		},
		{
			name:     "Skips a chain of occupants out of order",
			target:   at(9, 0),
			duration: 30 * time.Minute,
			intervals: []Interval{
				{Start: at(10, 0), End: at(10, 20), OwnerID: "c"},
				{Start: at(9, 0), End: at(9, 30), OwnerID: "a"},
				{Start: at(9, 30), End: at(10, 0), OwnerID: "b"},
			},
			want: at(10, 20),
		},
		{
			name:      "Gap large enough is used",
			target:    at(9, 0),
			duration:  30 * time.Minute,
			intervals: []Interval{{Start: at(9, 0), End: at(9, 30), OwnerID: "a"}, {Start: at(10, 0), End: at(11, 0), OwnerID: "b"}},
			want:      at(9, 30),
		},
		{
			name:      "Excluded owner ignored",
			target:    at(9, 0),
			duration:  30 * time.Minute,
			intervals: []Interval{{Start: at(9, 0), End: at(9, 30), OwnerID: "self"}},
			exclude:   "self",
			want:      at(9, 0),
		},
		{
			name:      "Other days ignored",
			target:    at(9, 0),
			duration:  30 * time.Minute,
			intervals: []Interval{{Start: at(9, 0).AddDate(0, 0, 1), End: at(9, 30).AddDate(0, 0, 1), OwnerID: "tomorrow"}},
			want:      at(9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindNextFreeSlot(tt.target, tt.duration, tt.intervals, tt.exclude, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FindNextFreeSlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNextFreeSlot_Deterministic(t *testing.T) {
	intervals := []Interval{
		{Start: at(9, 30), End: at(10, 0), OwnerID: "b"},
		{Start: at(9, 0), End: at(9, 30), OwnerID: "a"},
		{Start: at(9, 0), End: at(9, 30), OwnerID: "z"},
		{Start: at(11, 0), End: at(11, 45), OwnerID: "c"},
	}

	first, err1 := FindNextFreeSlot(at(9, 10), 40*time.Minute, intervals, "", 0)
	second, err2 := FindNextFreeSlot(at(9, 10), 40*time.Minute, intervals, "", 0)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !first.Equal(second) {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if intervals[0].OwnerID != "b" {
		t.Errorf("input slice was reordered")
	}
}

func TestFindNextFreeSlot_Exhausted(t *testing.T) {
	intervals := []Interval{{Start: at(9, 0), End: at(9, 30), OwnerID: "a"}}

	got, err := FindNextFreeSlot(at(9, 0), 30*time.Minute, intervals, "", 1)
	if !errors.Is(err, ErrConflictResolutionExhausted) {
		t.Fatalf("expected ErrConflictResolutionExhausted, got %v", err)
	}
	if !got.Equal(at(9, 30)) {
		t.Errorf("expected last candidate 09:30, got %v", got)
	}
}
