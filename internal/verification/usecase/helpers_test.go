package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"proof-timeline/internal/habit"
	"proof-timeline/internal/ledger"
	"proof-timeline/internal/matcher"
	"proof-timeline/internal/model"
	"proof-timeline/internal/recognition"
	"proof-timeline/internal/settlement"
	settlementMemory "proof-timeline/internal/settlement/repository/memory"
	settlementUC "proof-timeline/internal/settlement/usecase"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/task/repository/memory"
	"proof-timeline/internal/verification"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeClock fires timers synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	c       *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) verification.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{c: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeRecognizer returns a fixed result. When block is set every call waits on it.
type fakeRecognizer struct {
	mu      sync.Mutex
	labels  []string
	err     error
	calls   int
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeRecognizer) Classify(ctx context.Context, creds recognition.Credentials, image string) (recognition.Result, error) {
	f.mu.Lock()
	f.calls++
	labels, err := f.labels, f.err
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if err != nil {
		return recognition.Result{}, err
	}
	res := recognition.Result{}
	for _, l := range labels {
		res.Labels = append(res.Labels, recognition.Label{Text: l, Confidence: 0.9})
	}
	return res, nil
}

func (f *fakeRecognizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []verification.Event
}

func (n *recordingNotifier) Notify(ctx context.Context, ev verification.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) count(typ verification.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, ev := range n.events {
		if ev.Type == typ {
			c++
		}
	}
	return c
}

var testDay = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return testDay.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

var testCreds = recognition.Credentials{APIKey: "ak", SecretKey: "sk"}

type fixture struct {
	uc         *implUseCase
	clock      *fakeClock
	tasks      repository.TaskRepository
	recognizer *fakeRecognizer
	ledger     *ledger.Ledger
	habits     *habit.Recorder
	notifier   *recordingNotifier
	started    []string
	afterStart verification.StartHook
	settlement settlement.UseCase
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	l := &mockLogger{}
	f := &fixture{
		clock:      &fakeClock{now: at(8, 0)},
		tasks:      memory.New(l),
		recognizer: &fakeRecognizer{},
		ledger:     ledger.New(l, 100),
		habits:     habit.New(l),
		notifier:   &recordingNotifier{},
	}
	f.settlement = settlementUC.New(l, settlementMemory.New(), f.ledger, settlement.Config{})
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Policy.Kind == "" {
		cfg.Policy = matcher.AnyMatch()
	}
	deps := Deps{
		Habits:   f.habits,
		Notifier: f.notifier,
		OnStarted: func(ctx context.Context, taskID string, at time.Time) {
			f.started = append(f.started, taskID)
			if f.afterStart != nil {
				f.afterStart(ctx, taskID, at)
			}
		},
	}
	f.uc = New(l, f.clock, f.tasks, f.recognizer, matcher.New(nil), f.settlement, deps, cfg).(*implUseCase)
	return f
}

func (f *fixture) seed(t *testing.T, opts ...repository.CreateTaskOptions) {
	t.Helper()
	for _, o := range opts {
		if _, err := f.tasks.CreateTask(context.Background(), o); err != nil {
			t.Fatalf("seed %s: %v", o.ID, err)
		}
	}
}

func (f *fixture) tick(t *testing.T) verification.TickResult {
	t.Helper()
	res, err := f.uc.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	return res
}

func startTask(id string, keywords ...string) repository.CreateTaskOptions {
	return repository.CreateTaskOptions{
		ID:                id,
		Title:             "task " + id,
		ScheduledStart:    at(9, 0),
		DurationMinutes:   30,
		VerificationStart: &model.VerificationConfig{Enabled: true, Keywords: keywords},
	}
}

func (f *fixture) mutateTask(t *testing.T, id string, mutate func(*model.Task)) {
	t.Helper()
	task, err := f.tasks.GetTask(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	mutate(&task)
	if _, err := f.tasks.UpdateTask(context.Background(), task); err != nil {
		t.Fatalf("update %s: %v", id, err)
	}
}
