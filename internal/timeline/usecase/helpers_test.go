package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/task/repository/memory"
	"proof-timeline/pkg/datemath"
	"proof-timeline/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar recording every call
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	moved   []gcalendar.MoveEventRequest
	failIDs map[string]bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.failIDs["create"] {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: "evt-" + req.Summary}, nil
}

func (m *mockCalendar) MoveEvent(ctx context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error) {
	m.moved = append(m.moved, req)
	if m.failIDs[req.EventID] {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: req.EventID}, nil
}

var testDay = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return testDay.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newTestUseCase(t *testing.T, cal CalendarMirror, cfg Config) (*implUseCase, repository.TaskRepository, *mockLogger) {
	t.Helper()
	l := &mockLogger{}
	repo := memory.New(l)
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := New(l, repo, cal, dm, cfg).(*implUseCase)
	uc.now = func() time.Time { return at(8, 0) }
	return uc, repo, l
}

func seed(t *testing.T, repo repository.TaskRepository, opts ...repository.CreateTaskOptions) {
	t.Helper()
	for _, o := range opts {
		if _, err := repo.CreateTask(context.Background(), o); err != nil {
			t.Fatalf("seed %s: %v", o.ID, err)
		}
	}
}
