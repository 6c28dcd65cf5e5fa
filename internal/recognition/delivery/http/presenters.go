package http

import (
	"encoding/json"
	"strings"

	"proof-timeline/internal/recognition"
)

type verifyReq struct {
	Image     string   `json:"image"`
	Keywords  []string `json:"keywords"`
	APIKey    string   `json:"apiKey"`
	SecretKey string   `json:"secretKey"`
}

func (r verifyReq) validate() error {
	var missing []string
	if strings.TrimSpace(r.Image) == "" {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(r.APIKey) == "" {
		missing = append(missing, "apiKey")
	}
	if strings.TrimSpace(r.SecretKey) == "" {
		missing = append(missing, "secretKey")
	}
	if len(missing) > 0 {
		return &missingFieldsError{fields: missing}
	}
	return nil
}

func (r verifyReq) credentials() recognition.Credentials {
	return recognition.Credentials{APIKey: r.APIKey, SecretKey: r.SecretKey}
}

// keywords drops blank entries.
func (r verifyReq) keywords() []string {
	out := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

type missingFieldsError struct {
	fields []string
}

func (e *missingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.fields, ", ")
}

// matchResp answers a request that carried keywords.
type matchResp struct {
	Success           bool                `json:"success"`
	Message           string              `json:"message"`
	MatchedKeywords   []string            `json:"matchedKeywords"`
	RecognizedObjects []recognition.Label `json:"recognizedObjects"`
	RawData           json.RawMessage     `json:"rawData"`
}

// recognizeResp answers a recognition-only request.
type recognizeResp struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type errorResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
