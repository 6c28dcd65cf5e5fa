package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"proof-timeline/internal/model"
	"proof-timeline/internal/task/repository"
	"proof-timeline/internal/verification"
)

var kinds = []verification.Kind{verification.KindStart, verification.KindCompletion}

func (uc *implUseCase) Tick(ctx context.Context) (verification.TickResult, error) {
	now := uc.clock.Now()
	tasks, err := uc.tasks.ListTasks(ctx, repository.ListTasksOptions{Day: now, Location: uc.cfg.Location})
	if err != nil {
		uc.l.Errorf(ctx, "verification.usecase.Tick: failed to list tasks: %v", err)
		return verification.TickResult{}, err
	}
	tasks, gone := uc.withSessionTasks(ctx, tasks)

	var (
		res      verification.TickResult
		opened   []verification.Event
		timedOut []verification.Session
	)

	uc.mu.Lock()
	for _, t := range tasks {
		for _, kind := range kinds {
			if uc.reconcileLocked(ctx, t, kind) {
				res.Dropped++
			}
			if ev, ok := uc.openWindowLocked(t, kind, now); ok {
				opened = append(opened, ev)
			}
		}
	}
	for _, key := range uc.sortedKeysLocked() {
		ls := uc.sessions[key]
		if gone[key.taskID] && droppable(ls) {
			uc.l.Infof(ctx, "verification.usecase.Tick: task %s is gone, dropping its %s session", key.taskID, key.kind)
			uc.dropLocked(key, ls)
			res.Dropped++
			continue
		}
		if ls.Phase == verification.WaitingPhase(ls.Kind) && now.After(ls.Deadline) {
			timedOut = append(timedOut, uc.timeoutLocked(ls, now))
		}
	}
	uc.mu.Unlock()

	res.Opened = len(opened)
	res.TimedOut = len(timedOut)
	for _, ev := range opened {
		uc.notify(ctx, ev)
	}
	for _, s := range timedOut {
		uc.afterTimeout(ctx, s, now)
	}
	return res, nil
}

// withSessionTasks adds the tasks of live sessions that are not on today's
// list, so a task moved to another day still reaches reconcileLocked. The
// returned set holds the ids of tasks that no longer exist.
func (uc *implUseCase) withSessionTasks(ctx context.Context, tasks []model.Task) ([]model.Task, map[string]bool) {
	listed := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		listed[t.ID] = true
	}

	uc.mu.Lock()
	var missing []string
	for _, key := range uc.sortedKeysLocked() {
		if !listed[key.taskID] && droppable(uc.sessions[key]) {
			listed[key.taskID] = true
			missing = append(missing, key.taskID)
		}
	}
	uc.mu.Unlock()

	gone := make(map[string]bool)
	for _, id := range missing {
		t, err := uc.tasks.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				gone[id] = true
				continue
			}
			uc.l.Warnf(ctx, "verification.usecase.Tick: failed to get task %s: %v", id, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, gone
}

// reconcileLocked drops the open session of (t, kind) when the task no longer
// wants it or its anchor moved. openWindowLocked then starts over from the
// current schedule.
func (uc *implUseCase) reconcileLocked(ctx context.Context, t model.Task, kind verification.Kind) bool {
	key := sessionKey{taskID: t.ID, kind: kind}
	ls := uc.sessions[key]
	if !droppable(ls) {
		return false
	}

	vc := verificationConfig(t, kind)
	anchor, ok := anchorOf(t, kind)
	switch {
	case vc == nil || !vc.Enabled || !eligible(t, kind):
		uc.l.Infof(ctx, "verification.usecase.reconcile: task %s (%s) no longer needs its %s window", t.ID, t.Status, kind)
	case !ok || !anchor.Equal(ls.Anchor):
		uc.l.Infof(ctx, "verification.usecase.reconcile: task %s rescheduled, moving its %s window from %s to %s",
			t.ID, kind, ls.Anchor.Format(time.RFC3339), anchor.Format(time.RFC3339))
	default:
		return false
	}
	uc.dropLocked(key, ls)
	return true
}

// droppable reports whether ls is open and has no capture in flight.
func droppable(ls *liveSession) bool {
	if ls == nil || ls.Terminal() {
		return false
	}
	return ls.Phase != verification.PhaseCapturing && ls.Phase != verification.PhaseRecognizing
}

func (uc *implUseCase) dropLocked(key sessionKey, ls *liveSession) {
	stopTimer(ls)
	delete(uc.sessions, key)
}

// refreshLocked applies a fresh read of the session's task and reports
// whether the session was dropped.
func (uc *implUseCase) refreshLocked(ctx context.Context, key sessionKey, t model.Task, err error) bool {
	if errors.Is(err, repository.ErrNotFound) {
		if ls := uc.sessions[key]; droppable(ls) {
			uc.dropLocked(key, ls)
			return true
		}
		return false
	}
	if err != nil {
		return false
	}
	return uc.reconcileLocked(ctx, t, key.kind)
}

// openWindowLocked creates the session of (t, kind) when its anchor is due and
// moves an idle session into its waiting phase. The first window closes at
// anchor + grace; a window reopened after a rejection gets a full grace window.
func (uc *implUseCase) openWindowLocked(t model.Task, kind verification.Kind, now time.Time) (verification.Event, bool) {
	vc := verificationConfig(t, kind)
	if vc == nil || !vc.Enabled || !eligible(t, kind) {
		return verification.Event{}, false
	}
	anchor, ok := anchorOf(t, kind)
	if !ok || now.Before(anchor) {
		return verification.Event{}, false
	}

	key := sessionKey{taskID: t.ID, kind: kind}
	ls := uc.sessions[key]
	if ls == nil {
		if uc.finished[windowKey{taskID: t.ID, kind: kind, anchor: anchor.UnixNano()}] {
			return verification.Event{}, false
		}
		ls = &liveSession{Session: verification.Session{
			ID:               uc.newID(),
			TaskID:           t.ID,
			TaskTitle:        t.Title,
			Kind:             kind,
			Phase:            verification.IdlePhase(kind),
			RequiredKeywords: append([]string(nil), vc.Keywords...),
			RewardCoins:      t.RewardCoins,
			Anchor:           anchor,
			UpdatedAt:        now,
		}}
		uc.sessions[key] = ls
	}
	if ls.Phase != verification.IdlePhase(kind) {
		return verification.Event{}, false
	}

	if err := verification.Transition(&ls.Session, verification.WaitingPhase(kind)); err != nil {
		uc.l.Errorf(context.Background(), "verification.usecase.openWindow: %v", err)
		return verification.Event{}, false
	}
	ls.WindowStart = now
	if ls.AttemptCount == 0 {
		ls.Deadline = ls.Anchor.Add(uc.cfg.GraceWindow)
	} else {
		ls.Deadline = now.Add(uc.cfg.GraceWindow)
	}
	ls.UpdatedAt = now
	if now.After(ls.Deadline) {
		// Seen too late: the sweep in Tick times it out.
		return verification.Event{}, false
	}

	id := ls.ID
	ls.timer = uc.clock.AfterFunc(ls.Deadline.Sub(now)+time.Nanosecond, func() {
		uc.expire(key, id)
	})

	return verification.Event{
		Type:      verification.EventWindowOpened,
		TaskID:    ls.TaskID,
		TaskTitle: ls.TaskTitle,
		Kind:      kind,
		SessionID: ls.ID,
		Attempt:   ls.AttemptCount + 1,
		Message:   "send a photo before " + ls.Deadline.In(uc.cfg.Location).Format("15:04:05"),
		At:        now,
	}, true
}

// expire is the deadline timer of one session attempt.
func (uc *implUseCase) expire(key sessionKey, id string) {
	ctx := context.Background()
	now := uc.clock.Now()
	t, err := uc.tasks.GetTask(ctx, key.taskID)

	uc.mu.Lock()
	ls := uc.sessions[key]
	if ls == nil || ls.ID != id || ls.Phase != verification.WaitingPhase(ls.Kind) || !now.After(ls.Deadline) {
		uc.mu.Unlock()
		return
	}
	// The task may have moved since the window opened.
	if uc.refreshLocked(ctx, key, t, err) {
		uc.mu.Unlock()
		return
	}
	s := uc.timeoutLocked(ls, now)
	uc.mu.Unlock()

	uc.afterTimeout(ctx, s, now)
}

func (uc *implUseCase) timeoutLocked(ls *liveSession, now time.Time) verification.Session {
	if err := verification.Transition(&ls.Session, verification.PhaseTimedOut); err != nil {
		uc.l.Errorf(context.Background(), "verification.usecase.timeout: %v", err)
	}
	uc.closeLocked(ls, now, verification.ErrVerificationTimeout.Error())
	return ls.Session.Clone()
}

func (uc *implUseCase) afterTimeout(ctx context.Context, s verification.Session, now time.Time) {
	uc.l.Warnf(ctx, "verification.usecase.Tick: %s window of task %s timed out", s.Kind, s.TaskID)

	if uc.deps.Habits != nil {
		if err := uc.deps.Habits.RecordOccurrence(ctx, string(s.Kind)+"_timeout", s.TaskID, now); err != nil {
			uc.l.Warnf(ctx, "verification.usecase.Tick: failed to record habit for task %s: %v", s.TaskID, err)
		}
	}
	uc.markTaskFailed(ctx, s.TaskID)
	uc.notify(ctx, verification.Event{
		Type:      verification.EventTimedOut,
		TaskID:    s.TaskID,
		TaskTitle: s.TaskTitle,
		Kind:      s.Kind,
		SessionID: s.ID,
		Attempt:   s.AttemptCount + 1,
		Message:   "no photo within the grace window",
		At:        now,
	})
}

func (uc *implUseCase) sortedKeysLocked() []sessionKey {
	keys := make([]sessionKey, 0, len(uc.sessions))
	for k := range uc.sessions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].taskID != keys[j].taskID {
			return keys[i].taskID < keys[j].taskID
		}
		return keys[i].kind < keys[j].kind
	})
	return keys
}

func verificationConfig(t model.Task, kind verification.Kind) *model.VerificationConfig {
	if kind == verification.KindCompletion {
		return t.VerificationComplete
	}
	return t.VerificationStart
}

// anchorOf is the instant the window of kind opens: the scheduled start, or
// the scheduled end (start + duration when the end is unset).
func anchorOf(t model.Task, kind verification.Kind) (time.Time, bool) {
	if kind == verification.KindStart {
		return t.ScheduledStart, !t.ScheduledStart.IsZero()
	}
	if !t.ScheduledEnd.IsZero() {
		return t.ScheduledEnd, true
	}
	if t.DurationMinutes > 0 && !t.ScheduledStart.IsZero() {
		return t.ScheduledStart.Add(time.Duration(t.DurationMinutes) * time.Minute), true
	}
	return time.Time{}, false
}

func eligible(t model.Task, kind verification.Kind) bool {
	switch kind {
	case verification.KindStart:
		return t.Status == model.TaskStatusScheduled
	case verification.KindCompletion:
		if t.Status == model.TaskStatusInProgress {
			return true
		}
		startRequired := t.VerificationStart != nil && t.VerificationStart.Enabled
		return t.Status == model.TaskStatusScheduled && !startRequired
	default:
		return false
	}
}
