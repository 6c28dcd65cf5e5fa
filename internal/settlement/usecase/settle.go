package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"proof-timeline/internal/settlement"
	"proof-timeline/internal/settlement/repository"
)

// Settle records the settlement before touching the ledger, so a session id
// can never move currency twice. A ledger failure removes the record again.
func (uc *implUseCase) Settle(ctx context.Context, in settlement.SettleInput) (settlement.Record, error) {
	if in.SessionID == "" || in.TaskID == "" {
		return settlement.Record{}, settlement.ErrInvalidInput
	}
	if in.Outcome != settlement.OutcomeSuccess && in.Outcome != settlement.OutcomeFailure {
		return settlement.Record{}, settlement.ErrInvalidInput
	}

	// Callers joining an in-flight settlement share its outcome, so a
	// duplicate never reports success for a settlement that rolls back.
	leader := false
	v, err, _ := uc.flights.Do(in.SessionID, func() (any, error) {
		leader = true
		return uc.settle(ctx, in)
	})
	rec, _ := v.(settlement.Record)
	if err == nil && !leader {
		return rec, settlement.ErrAlreadySettled
	}
	return rec, err
}

func (uc *implUseCase) settle(ctx context.Context, in settlement.SettleInput) (settlement.Record, error) {
	rec := settlement.Record{
		SessionID: in.SessionID,
		TaskID:    in.TaskID,
		Amount:    uc.amount(in),
		Kind:      settlement.KindReward,
		Reason:    in.Reason,
		SettledAt: uc.now(),
	}
	if in.Outcome == settlement.OutcomeFailure {
		rec.Kind = settlement.KindPenalty
	}

	if err := uc.repo.Insert(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return uc.existing(ctx, in.SessionID)
		}
		uc.l.Errorf(ctx, "settlement.usecase.Settle: repo.Insert failed: %v", err)
		return settlement.Record{}, err
	}

	if err := uc.move(ctx, rec, in.TaskTitle); err != nil {
		if delErr := uc.repo.Delete(ctx, rec.SessionID); delErr != nil {
			uc.l.Errorf(ctx, "settlement.usecase.Settle: failed to roll back %s: %v", rec.SessionID, delErr)
		}
		return settlement.Record{}, fmt.Errorf("ledger %s failed: %w", rec.Kind, err)
	}

	uc.l.Infof(ctx, "settlement.usecase.Settle: %s %d for task %s (session %s)", rec.Kind, rec.Amount, rec.TaskID, rec.SessionID)
	return rec, nil
}

func (uc *implUseCase) ListByTask(ctx context.Context, taskID string) ([]settlement.Record, error) {
	return uc.repo.ListByTask(ctx, taskID)
}

// amount is floor(base × factor).
func (uc *implUseCase) amount(in settlement.SettleInput) int {
	base := in.BaseReward
	if base <= 0 {
		base = uc.cfg.DefaultBaseReward
	}
	factor := uc.cfg.BonusFactor
	if in.Outcome == settlement.OutcomeFailure {
		factor = uc.cfg.PenaltyFactor
	}
	return int(math.Floor(float64(base) * factor))
}

func (uc *implUseCase) move(ctx context.Context, rec settlement.Record, title string) error {
	if rec.Amount == 0 || uc.ledger == nil {
		return nil
	}
	if rec.Kind == settlement.KindPenalty {
		return uc.ledger.Debit(ctx, rec.Amount, rec.Reason, rec.TaskID, title)
	}
	return uc.ledger.Credit(ctx, rec.Amount, rec.Reason, rec.TaskID, title)
}

func (uc *implUseCase) existing(ctx context.Context, sessionID string) (settlement.Record, error) {
	rec, err := uc.repo.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return settlement.Record{}, err
	}
	return rec, settlement.ErrAlreadySettled
}
