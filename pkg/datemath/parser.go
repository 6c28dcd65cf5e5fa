package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the calendar-day format accepted by ParseDay.
const DayLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks)$`)

// Parser resolves day expressions in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new day parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDay resolves "today", "tomorrow", "yesterday", "in N days|weeks" or a
// YYYY-MM-DD date into the start of that day. An empty expression means today.
func (p *Parser) ParseDay(expr string, now time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return StartOfDay(now.In(p.location)), nil
	case "tomorrow":
		return StartOfDay(now.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday":
		return StartOfDay(now.In(p.location).AddDate(0, 0, -1)), nil
	}

	if m := inDurationRe.FindStringSubmatch(expr); len(m) == 3 {
		amount, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			amount *= 7
		}
		return StartOfDay(now.In(p.location).AddDate(0, 0, amount)), nil
	}

	day, err := time.ParseInLocation(DayLayout, expr, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", expr, err)
	}
	return day, nil
}

// StartOfDay returns midnight at the start of t's day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the first instant of the following day, so a day is the
// half-open range [StartOfDay, EndOfDay).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day in ref's location.
func SameDay(a, b time.Time, ref *time.Location) bool {
	if ref == nil {
		ref = a.Location()
	}
	ay, am, ad := a.In(ref).Date()
	by, bm, bd := b.In(ref).Date()
	return ay == by && am == bm && ad == bd
}
