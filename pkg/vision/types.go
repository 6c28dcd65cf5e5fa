package vision

import (
	"encoding/json"
	"fmt"
)

// TokenResponse is the body of the token endpoint.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Label is one classification candidate.
type Label struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Root    string  `json:"root,omitempty"`
}

// ClassifyResponse is the body of the classify endpoint.
type ClassifyResponse struct {
	LogID     json.Number `json:"log_id,omitempty"`
	ResultNum int         `json:"result_num,omitempty"`
	Result    []Label     `json:"result"`
	ErrorCode int         `json:"error_code,omitempty"`
	ErrorMsg  string      `json:"error_msg,omitempty"`

	// Raw is the undecoded body.
	Raw json.RawMessage `json:"-"`
}

// APIError is returned when the provider answers with a non-2xx status or
// an error inside the payload.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("vision API error (%d): %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("vision API error (%d): %s", e.StatusCode, e.Message)
}
