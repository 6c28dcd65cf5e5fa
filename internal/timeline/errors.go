package timeline

import "errors"

var (
	// ErrConflictResolutionExhausted is non-fatal: the slot finder hit its
	// iteration cap and the caller falls back to the requested time.
	ErrConflictResolutionExhausted = errors.New("conflict resolution exhausted")
	ErrTaskNotFound                = errors.New("task not found")
	ErrMissingDuration             = errors.New("task has no duration and no default is configured")
	ErrInvalidActualStart          = errors.New("actual start is required")
	ErrInvalidDay                  = errors.New("invalid day expression")
	ErrInvalidTask                 = errors.New("task title and scheduled start are required")
)
