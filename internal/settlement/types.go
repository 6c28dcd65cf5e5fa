package settlement

import "time"

// Outcome is the verdict a settlement is computed from.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Kind is the direction of a ledger movement.
type Kind string

const (
	KindReward  Kind = "reward"
	KindPenalty Kind = "penalty"
)

// Record is the persisted trace of one settlement. SessionID is unique.
type Record struct {
	SessionID string    `json:"session_id"`
	TaskID    string    `json:"task_id"`
	Amount    int       `json:"amount"`
	Kind      Kind      `json:"kind"`
	Reason    string    `json:"reason"`
	SettledAt time.Time `json:"settled_at"`
}

// SettleInput describes the transition being settled.
type SettleInput struct {
	SessionID  string
	TaskID     string
	TaskTitle  string
	BaseReward int // 0 uses the configured default
	Outcome    Outcome
	Reason     string
}

// Config holds the reward arithmetic.
type Config struct {
	DefaultBaseReward int
	BonusFactor       float64
	PenaltyFactor     float64
}
