package datemath_test

import (
	"testing"
	"time"

	"proof-timeline/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty is today", expr: "", want: startOfNow},
		{name: "Today", expr: "today", want: startOfNow},
		{name: "Tomorrow", expr: "Tomorrow ", want: startOfNow.AddDate(0, 0, 1)},
		{name: "Yesterday", expr: "yesterday", want: startOfNow.AddDate(0, 0, -1)},
		{name: "In 3 days", expr: "in 3 days", want: startOfNow.AddDate(0, 0, 3)},
		{name: "In 2 weeks", expr: "in 2 weeks", want: startOfNow.AddDate(0, 0, 14)},
		{name: "Absolute date", expr: "2024-06-10", want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Garbage", expr: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDay(tt.expr, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	a := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC) // 06:30 on May 2 in UTC+7
	b := time.Date(2024, 5, 2, 1, 0, 0, 0, time.UTC)

	if datemath.SameDay(a, b, time.UTC) {
		t.Errorf("expected different days in UTC")
	}
	if !datemath.SameDay(a, b, loc) {
		t.Errorf("expected same day in UTC+7")
	}
}

func TestDayBounds(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	if got := datemath.StartOfDay(tm); !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := datemath.EndOfDay(tm); !got.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", got)
	}
}
