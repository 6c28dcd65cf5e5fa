package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"proof-timeline/internal/matcher"
	"proof-timeline/internal/model"
	"proof-timeline/internal/recognition"
	"proof-timeline/internal/settlement"
	"proof-timeline/internal/verification"
)

func (uc *implUseCase) Capture(ctx context.Context, in verification.CaptureInput) (verification.CaptureOutput, error) {
	kind, err := verification.ParseKind(string(in.Kind))
	if err != nil {
		return verification.CaptureOutput{}, err
	}
	key := sessionKey{taskID: in.TaskID, kind: kind}
	now := uc.clock.Now()
	task, taskErr := uc.tasks.GetTask(ctx, in.TaskID)

	uc.mu.Lock()
	uc.refreshLocked(ctx, key, task, taskErr)
	ls := uc.sessions[key]
	switch {
	case ls == nil:
		uc.mu.Unlock()
		return verification.CaptureOutput{}, verification.ErrSessionNotFound
	case ls.Phase == verification.PhaseCapturing || ls.Phase == verification.PhaseRecognizing:
		uc.mu.Unlock()
		return verification.CaptureOutput{}, verification.ErrCaptureInProgress
	case ls.Terminal():
		uc.mu.Unlock()
		return verification.CaptureOutput{Session: ls.Session.Clone()}, verification.ErrSessionClosed
	case ls.Phase != verification.WaitingPhase(kind):
		uc.mu.Unlock()
		return verification.CaptureOutput{Session: ls.Session.Clone()}, verification.ErrWindowNotOpen
	}

	if now.After(ls.Deadline) {
		s := uc.timeoutLocked(ls, now)
		uc.mu.Unlock()
		uc.afterTimeout(ctx, s, now)
		return verification.CaptureOutput{Session: s}, verification.ErrVerificationTimeout
	}

	if !uc.cfg.Credentials.Valid() {
		s := uc.failLocked(ls, now, recognition.ErrConfiguration.Error())
		uc.mu.Unlock()
		uc.afterFailed(ctx, s, now)
		return verification.CaptureOutput{Session: s}, recognition.ErrConfiguration
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		uc.mu.Unlock()
		return verification.CaptureOutput{}, verification.ErrEmptyImage
	}

	stopTimer(ls)
	if err := verification.Transition(&ls.Session, verification.PhaseCapturing); err != nil {
		uc.mu.Unlock()
		return verification.CaptureOutput{}, err
	}
	if err := verification.Transition(&ls.Session, verification.PhaseRecognizing); err != nil {
		uc.mu.Unlock()
		return verification.CaptureOutput{}, err
	}
	ls.UpdatedAt = now
	parked := ls.Session.Clone()
	uc.mu.Unlock()

	// The verdict must not depend on the caller hanging up mid-request.
	result, recErr := uc.recognizer.Classify(context.WithoutCancel(ctx), uc.cfg.Credentials, image)
	now = uc.clock.Now()

	if errors.Is(recErr, recognition.ErrConfiguration) {
		uc.mu.Lock()
		s := uc.failLocked(ls, now, recErr.Error())
		uc.mu.Unlock()
		uc.afterFailed(ctx, s, now)
		return verification.CaptureOutput{Session: s}, recErr
	}

	var verdict matcher.Verdict
	if recErr == nil {
		verdict = uc.matcher.Match(result.Texts(), parked.RequiredKeywords, uc.cfg.Policy)
	}
	success := recErr == nil && verdict.Success
	reason := captureReason(kind, success, recErr, verdict)

	uc.mu.Lock()
	attemptID := ls.ID
	ls.Verdict = &verdict
	ls.UpdatedAt = now
	exhausted := false
	if success {
		ls.LastError = ""
		if err := verification.Transition(&ls.Session, verification.DonePhase(kind)); err != nil {
			uc.l.Errorf(ctx, "verification.usecase.Capture: %v", err)
		}
		uc.finished[windowKey{taskID: ls.TaskID, kind: kind, anchor: ls.Anchor.UnixNano()}] = true
	} else {
		ls.AttemptCount++
		if ls.AttemptCount >= uc.cfg.MaxAttempts {
			exhausted = true
			if err := verification.Transition(&ls.Session, verification.PhaseFailed); err != nil {
				uc.l.Errorf(ctx, "verification.usecase.Capture: %v", err)
			}
			uc.closeLocked(ls, now, reason)
		} else {
			ls.LastError = reason
			if err := verification.Transition(&ls.Session, verification.IdlePhase(kind)); err != nil {
				uc.l.Errorf(ctx, "verification.usecase.Capture: %v", err)
			}
			ls.ID = uc.newID()
		}
	}
	after := ls.Session.Clone()
	uc.mu.Unlock()

	out := verification.CaptureOutput{
		Session: after,
		Success: success,
		Verdict: verdict,
		Labels:  result.Labels,
		Reason:  reason,
	}

	outcome := settlement.OutcomeFailure
	if success {
		outcome = settlement.OutcomeSuccess
	}
	rec, err := uc.settler.Settle(ctx, settlement.SettleInput{
		SessionID:  attemptID,
		TaskID:     after.TaskID,
		TaskTitle:  after.TaskTitle,
		BaseReward: after.RewardCoins,
		Outcome:    outcome,
		Reason:     reason,
	})
	switch {
	case err == nil:
		out.SettledAmount = rec.Amount
	case errors.Is(err, settlement.ErrAlreadySettled):
		out.SettledAmount = rec.Amount
	default:
		uc.l.Errorf(ctx, "verification.usecase.Capture: failed to settle session %s: %v", attemptID, err)
	}

	switch {
	case success:
		uc.afterVerified(ctx, after, now)
	case exhausted:
		uc.afterFailed(ctx, after, now)
	default:
		uc.l.Infof(ctx, "verification.usecase.Capture: %s of task %s rejected (attempt %d/%d): %s",
			kind, after.TaskID, after.AttemptCount, uc.cfg.MaxAttempts, reason)
		uc.notify(ctx, verification.Event{
			Type:      verification.EventRejected,
			TaskID:    after.TaskID,
			TaskTitle: after.TaskTitle,
			Kind:      kind,
			SessionID: attemptID,
			Attempt:   after.AttemptCount,
			Message:   reason,
			At:        now,
		})
	}

	return out, nil
}

func (uc *implUseCase) afterVerified(ctx context.Context, s verification.Session, now time.Time) {
	uc.l.Infof(ctx, "verification.usecase.Capture: %s of task %s verified", s.Kind, s.TaskID)

	uc.updateTask(ctx, s.TaskID, func(t *model.Task) {
		ts := now
		if s.Kind == verification.KindStart {
			t.Status = model.TaskStatusInProgress
			t.ActualStart = &ts
			return
		}
		t.Status = model.TaskStatusCompleted
		t.ActualEnd = &ts
	})
	if s.Kind == verification.KindStart && uc.deps.OnStarted != nil {
		uc.deps.OnStarted(ctx, s.TaskID, now)
	}
	uc.notify(ctx, verification.Event{
		Type:      verification.EventVerified,
		TaskID:    s.TaskID,
		TaskTitle: s.TaskTitle,
		Kind:      s.Kind,
		SessionID: s.ID,
		Attempt:   s.AttemptCount + 1,
		At:        now,
	})
}

func (uc *implUseCase) afterFailed(ctx context.Context, s verification.Session, now time.Time) {
	uc.l.Warnf(ctx, "verification.usecase.Capture: %s of task %s failed: %s", s.Kind, s.TaskID, s.LastError)

	uc.markTaskFailed(ctx, s.TaskID)
	uc.notify(ctx, verification.Event{
		Type:      verification.EventFailed,
		TaskID:    s.TaskID,
		TaskTitle: s.TaskTitle,
		Kind:      s.Kind,
		SessionID: s.ID,
		Attempt:   s.AttemptCount,
		Message:   s.LastError,
		At:        now,
	})
}

func (uc *implUseCase) failLocked(ls *liveSession, now time.Time, reason string) verification.Session {
	if err := verification.Transition(&ls.Session, verification.PhaseFailed); err != nil {
		uc.l.Errorf(context.Background(), "verification.usecase.fail: %v", err)
	}
	uc.closeLocked(ls, now, reason)
	return ls.Session.Clone()
}

func captureReason(kind verification.Kind, success bool, recErr error, v matcher.Verdict) string {
	if success {
		return fmt.Sprintf("%s verified", kind)
	}
	if recErr != nil {
		return fmt.Sprintf("%s verification failed: %v", kind, recErr)
	}
	return fmt.Sprintf("%s verification failed: matched %d keyword(s), missing %s",
		kind, len(v.Matched), strings.Join(v.Unmatched, ", "))
}
