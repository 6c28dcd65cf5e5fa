package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"proof-timeline/internal/matcher"
	"proof-timeline/internal/recognition"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/verification"
	pkgLog "proof-timeline/pkg/log"
)

const (
	DefaultGraceWindow = 120 * time.Second
	DefaultMaxAttempts = 3
)

// Config tunes the verification controller.
type Config struct {
	GraceWindow time.Duration
	MaxAttempts int
	Policy      matcher.Policy
	Credentials recognition.Credentials
	Location    *time.Location // day boundary of the tick listing
}

// Deps are the optional collaborators. Nil members are skipped.
type Deps struct {
	Habits    verification.HabitRecorder
	Notifier  verification.Notifier
	OnStarted verification.StartHook
}

type sessionKey struct {
	taskID string
	kind   verification.Kind
}

type windowKey struct {
	taskID string
	kind   verification.Kind
	anchor int64
}

type liveSession struct {
	verification.Session
	timer verification.Timer
}

type implUseCase struct {
	l          pkgLog.Logger
	clock      verification.Clock
	tasks      repository.TaskRepository
	recognizer verification.Recognizer
	matcher    verification.KeywordMatcher
	settler    verification.Settler
	deps       Deps
	cfg        Config
	newID      func() string

	mu       sync.Mutex
	sessions map[sessionKey]*liveSession
	finished map[windowKey]bool
}

// New creates a new verification controller.
func New(
	l pkgLog.Logger,
	clock verification.Clock,
	tasks repository.TaskRepository,
	recognizer verification.Recognizer,
	keywordMatcher verification.KeywordMatcher,
	settler verification.Settler,
	deps Deps,
	cfg Config,
) verification.UseCase {
	if clock == nil {
		clock = verification.RealClock()
	}
	if cfg.GraceWindow <= 0 {
		cfg.GraceWindow = DefaultGraceWindow
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Policy.Kind == "" {
		cfg.Policy = matcher.RateMatch(matcher.DefaultRateThreshold)
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &implUseCase{
		l:          l,
		clock:      clock,
		tasks:      tasks,
		recognizer: recognizer,
		matcher:    keywordMatcher,
		settler:    settler,
		deps:       deps,
		cfg:        cfg,
		newID:      uuid.NewString,
		sessions:   make(map[sessionKey]*liveSession),
		finished:   make(map[windowKey]bool),
	}
}
