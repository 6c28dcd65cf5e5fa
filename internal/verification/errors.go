package verification

import "errors"

var (
	ErrSessionNotFound     = errors.New("verification session not found")
	ErrCaptureInProgress   = errors.New("a capture is already being verified")
	ErrVerificationTimeout = errors.New("verification window timed out")
	ErrWindowNotOpen       = errors.New("verification window is not open")
	ErrSessionClosed       = errors.New("verification session already finished")
	ErrSessionActive       = errors.New("verification session is still active")
	ErrEmptyImage          = errors.New("image is required")
	ErrInvalidKind         = errors.New("invalid verification kind")
	ErrInvalidTransition   = errors.New("invalid phase transition")
)
