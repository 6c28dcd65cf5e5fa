package recognition

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the credential pair is missing. Nothing was sent.
	ErrConfiguration = errors.New("recognition credentials are not configured")
	// ErrRecognitionEmpty means the provider answered but no label passed the threshold.
	ErrRecognitionEmpty = errors.New("no labels above confidence threshold")
)

// NetworkError wraps a failure to reach the provider.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("recognition %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProviderError is a non-2xx answer or an error code inside the payload.
type ProviderError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("recognition %s: provider error %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("recognition %s: provider error (%d): %s", e.Op, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }
