package usecase

import (
	"time"

	"golang.org/x/sync/singleflight"

	"proof-timeline/internal/settlement"
	"proof-timeline/internal/settlement/repository"
	pkgLog "proof-timeline/pkg/log"
)

const (
	DefaultBaseReward    = 10
	DefaultBonusFactor   = 1.0
	DefaultPenaltyFactor = 0.5
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	ledger settlement.Ledger
	cfg    settlement.Config
	now    func() time.Time

	// flights joins concurrent calls for one session id.
	flights singleflight.Group
}

// New creates a new settlement UseCase instance. Zero config values take the defaults.
func New(l pkgLog.Logger, repo repository.Repository, ledger settlement.Ledger, cfg settlement.Config) settlement.UseCase {
	if cfg.DefaultBaseReward <= 0 {
		cfg.DefaultBaseReward = DefaultBaseReward
	}
	if cfg.BonusFactor <= 0 {
		cfg.BonusFactor = DefaultBonusFactor
	}
	if cfg.PenaltyFactor <= 0 {
		cfg.PenaltyFactor = DefaultPenaltyFactor
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		ledger: ledger,
		cfg:    cfg,
		now:    time.Now,
	}
}
