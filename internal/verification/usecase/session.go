package usecase

import (
	"context"
	"errors"
	"time"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/verification"
)

func (uc *implUseCase) Get(ctx context.Context, taskID string, kind verification.Kind) (verification.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ls := uc.sessions[sessionKey{taskID: taskID, kind: kind}]
	if ls == nil {
		return verification.Session{}, verification.ErrSessionNotFound
	}
	return ls.Session.Clone(), nil
}

func (uc *implUseCase) List(ctx context.Context) []verification.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]verification.Session, 0, len(uc.sessions))
	for _, key := range uc.sortedKeysLocked() {
		out = append(out, uc.sessions[key].Session.Clone())
	}
	return out
}

func (uc *implUseCase) Discard(ctx context.Context, taskID string, kind verification.Kind) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := sessionKey{taskID: taskID, kind: kind}
	ls := uc.sessions[key]
	if ls == nil {
		return verification.ErrSessionNotFound
	}
	if !ls.Terminal() {
		return verification.ErrSessionActive
	}
	delete(uc.sessions, key)
	return nil
}

func (uc *implUseCase) Stop() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, ls := range uc.sessions {
		stopTimer(ls)
	}
}

// closeLocked finishes the window of ls so ticks never reopen it.
func (uc *implUseCase) closeLocked(ls *liveSession, now time.Time, reason string) {
	stopTimer(ls)
	ls.LastError = reason
	ls.UpdatedAt = now
	uc.finished[windowKey{taskID: ls.TaskID, kind: ls.Kind, anchor: ls.Anchor.UnixNano()}] = true
}

func stopTimer(ls *liveSession) {
	if ls.timer != nil {
		ls.timer.Stop()
		ls.timer = nil
	}
}

func (uc *implUseCase) markTaskFailed(ctx context.Context, taskID string) {
	uc.updateTask(ctx, taskID, func(t *model.Task) {
		if !t.Status.Settled() {
			t.Status = model.TaskStatusFailed
		}
	})
}

func (uc *implUseCase) updateTask(ctx context.Context, taskID string, mutate func(t *model.Task)) {
	t, err := uc.tasks.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "verification.usecase.updateTask: task %s no longer exists", taskID)
			return
		}
		uc.l.Errorf(ctx, "verification.usecase.updateTask: failed to get task %s: %v", taskID, err)
		return
	}
	mutate(&t)
	if _, err := uc.tasks.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "verification.usecase.updateTask: failed to update task %s: %v", taskID, err)
	}
}

func (uc *implUseCase) notify(ctx context.Context, ev verification.Event) {
	if uc.deps.Notifier == nil {
		return
	}
	uc.deps.Notifier.Notify(ctx, ev)
}
