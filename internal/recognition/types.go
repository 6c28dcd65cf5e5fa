package recognition

import (
	"encoding/json"
	"strings"
)

// Credentials is the provider api/secret key pair.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Valid reports whether both keys are present.
func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.SecretKey) != ""
}

func (c Credentials) cacheKey() string {
	return c.APIKey + "\x00" + c.SecretKey
}

type Label struct {
	Text       string  `json:"keyword"`
	Confidence float64 `json:"score"`
}

// Result is a classification answer. Labels holds only labels above the threshold.
type Result struct {
	Labels            []Label
	ProviderErrorCode int
	Raw               json.RawMessage
}

// Texts returns the label texts in provider order.
func (r Result) Texts() []string {
	out := make([]string, 0, len(r.Labels))
	for _, l := range r.Labels {
		out = append(out, l.Text)
	}
	return out
}
