package matcher_test

import (
	"reflect"
	"testing"

	"proof-timeline/internal/matcher"
)

func TestExpand(t *testing.T) {
	m := matcher.New(map[string][]string{
		"Desk":  {"standing desk", "DESK"},
		"  ":    {"ignored"},
		"piano": {"piano", "keyboard"},
	})

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{name: "Unknown expands to itself", keyword: "Violin", want: []string{"violin"}},
		{name: "Override replaces built-in", keyword: "desk", want: []string{"desk", "standing desk"}},
		{name: "New entry", keyword: "piano", want: []string{"piano", "keyboard"}},
		{name: "Empty", keyword: " ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Expand(tt.keyword); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}

	if got := m.Expand("kitchen"); got[0] != "kitchen" || len(got) < 3 {
		t.Errorf("kitchen should keep its built-in expansion, got %v", got)
	}
}

func TestMatch(t *testing.T) {
	m := matcher.New(nil)

	tests := []struct {
		name        string
		labels      []string
		required    []string
		policy      matcher.Policy
		wantSuccess bool
		wantMatched []string
	}{
		{
			name:        "Kitchen through synonyms",
			labels:      []string{"stove", "refrigerator"},
			required:    []string{"kitchen"},
			policy:      matcher.AnyMatch(),
			wantSuccess: true,
			wantMatched: []string{"kitchen"},
		},
		{
			name:        "Exact match always wins",
			labels:      []string{"Trombone"},
			required:    []string{"trombone"},
			policy:      matcher.RateMatch(1),
			wantSuccess: true,
			wantMatched: []string{"trombone"},
		},
		{
			name:        "Label contains term",
			labels:      []string{"gas stove top"},
			required:    []string{"kitchen"},
			policy:      matcher.AnyMatch(),
			wantSuccess: true,
			wantMatched: []string{"kitchen"},
		},
		{
			name:        "Term contains label",
			labels:      []string{"washing"},
			required:    []string{"laundry"},
			policy:      matcher.AnyMatch(),
			wantSuccess: true,
			wantMatched: []string{"laundry"},
		},
		{
			name:        "No evidence",
			labels:      []string{"car", "road sign"},
			required:    []string{"kitchen"},
			policy:      matcher.AnyMatch(),
			wantSuccess: false,
		},
		{
			name:        "Rate below threshold",
			labels:      []string{"stove"},
			required:    []string{"kitchen", "bed", "gym", "pet"},
			policy:      matcher.RateMatch(0.3),
			wantSuccess: false,
			wantMatched: []string{"kitchen"},
		},
		{
			name:        "Rate at threshold",
			labels:      []string{"stove", "pillow"},
			required:    []string{"kitchen", "bed", "gym", "pet", "plant"},
			policy:      matcher.RateMatch(0.4),
			wantSuccess: true,
			wantMatched: []string{"kitchen", "bed"},
		},
		{
			name:        "Empty labels are ignored",
			labels:      []string{"", "  "},
			required:    []string{"kitchen"},
			policy:      matcher.AnyMatch(),
			wantSuccess: false,
		},
		{
			name:        "No required keywords",
			labels:      []string{"stove"},
			required:    []string{" ", ""},
			policy:      matcher.AnyMatch(),
			wantSuccess: true,
		},
		{
			name:     "Zero rate threshold never passes without a match",
			labels:   []string{"tree"},
			required: []string{"kitchen", "gym"},
			policy:   matcher.Policy{Kind: matcher.PolicyRate},
		},
		{
			name:        "Zero rate threshold takes the default",
			labels:      []string{"stove"},
			required:    []string{"kitchen", "gym", "desk", "book"},
			policy:      matcher.Policy{Kind: matcher.PolicyRate},
			wantSuccess: false,
			wantMatched: []string{"kitchen"},
		},
		{
			name:        "Duplicate keywords count once",
			labels:      []string{"stove"},
			required:    []string{"kitchen", "Kitchen", "gym"},
			policy:      matcher.RateMatch(0.5),
			wantSuccess: true,
			wantMatched: []string{"kitchen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := m.Match(tt.labels, tt.required, tt.policy)
			if v.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v (verdict %+v)", v.Success, tt.wantSuccess, v)
			}
			if !reflect.DeepEqual(v.Matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", v.Matched, tt.wantMatched)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := matcher.ParsePolicy(" RATE ", 0)
	if err != nil || p.Kind != matcher.PolicyRate || p.Threshold != matcher.DefaultRateThreshold {
		t.Errorf("unexpected policy %+v, err %v", p, err)
	}
	p, err = matcher.ParsePolicy("any", 0.9)
	if err != nil || p.Kind != matcher.PolicyAny {
		t.Errorf("unexpected policy %+v, err %v", p, err)
	}
	if _, err := matcher.ParsePolicy("most", 0); err == nil {
		t.Errorf("expected error for unknown policy")
	}
}
