package matcher

import (
	"fmt"
	"strings"
)

// PolicyKind selects how matched keywords turn into a verdict.
type PolicyKind string

const (
	// PolicyAny succeeds when at least one required keyword matched.
	PolicyAny PolicyKind = "any"
	// PolicyRate succeeds when matched/required reaches the threshold.
	PolicyRate PolicyKind = "rate"

	DefaultRateThreshold = 0.3
)

type Policy struct {
	Kind      PolicyKind
	Threshold float64 // PolicyRate only
}

func AnyMatch() Policy {
	return Policy{Kind: PolicyAny}
}

func RateMatch(threshold float64) Policy {
	if threshold <= 0 {
		threshold = DefaultRateThreshold
	}
	return Policy{Kind: PolicyRate, Threshold: threshold}
}

// ParsePolicy reads a policy name from configuration.
func ParsePolicy(name string, threshold float64) (Policy, error) {
	switch PolicyKind(strings.ToLower(strings.TrimSpace(name))) {
	case PolicyAny:
		return AnyMatch(), nil
	case PolicyRate:
		return RateMatch(threshold), nil
	default:
		return Policy{}, fmt.Errorf("unknown match policy %q", name)
	}
}

// Verdict is the outcome of Match.
type Verdict struct {
	Success   bool
	Matched   []string // required keywords with evidence, input order
	Unmatched []string
	Rate      float64
}

// Matcher expands keywords through a synonym table and matches them against labels.
type Matcher struct {
	synonyms map[string][]string
}

// New builds a Matcher from the built-in table. Entries in overrides replace
// the built-in entry of the same keyword.
func New(overrides map[string][]string) *Matcher {
	syn := make(map[string][]string, len(defaultSynonyms)+len(overrides))
	for k, v := range defaultSynonyms {
		syn[k] = v
	}
	for k, v := range overrides {
		key := normalize(k)
		if key == "" {
			continue
		}
		syn[key] = v
	}
	return &Matcher{synonyms: syn}
}

// Expand returns the keyword followed by its synonyms, lowercased and
// deduplicated. Unknown keywords expand to themselves.
func (m *Matcher) Expand(keyword string) []string {
	key := normalize(keyword)
	if key == "" {
		return nil
	}

	terms := []string{key}
	seen := map[string]bool{key: true}
	for _, s := range m.synonyms[key] {
		s = normalize(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		terms = append(terms, s)
	}
	return terms
}

// Match checks every required keyword against the labels. A keyword matches
// when some label and some expansion term contain one another, ignoring case.
// No required keywords is a vacuous success.
func (m *Matcher) Match(labels, required []string, policy Policy) Verdict {
	normLabels := make([]string, 0, len(labels))
	for _, l := range labels {
		if n := normalize(l); n != "" {
			normLabels = append(normLabels, n)
		}
	}

	var v Verdict
	seen := make(map[string]bool, len(required))
	total := 0
	for _, kw := range required {
		key := normalize(kw)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		total++

		if m.matchesAny(normLabels, m.Expand(key)) {
			v.Matched = append(v.Matched, strings.TrimSpace(kw))
		} else {
			v.Unmatched = append(v.Unmatched, strings.TrimSpace(kw))
		}
	}

	if total == 0 {
		v.Success = true
		v.Rate = 1
		return v
	}

	v.Rate = float64(len(v.Matched)) / float64(total)
	switch policy.Kind {
	case PolicyRate:
		threshold := policy.Threshold
		if threshold <= 0 {
			threshold = DefaultRateThreshold
		}
		v.Success = len(v.Matched) > 0 && v.Rate >= threshold
	default:
		v.Success = len(v.Matched) > 0
	}
	return v
}

func (m *Matcher) matchesAny(labels, terms []string) bool {
	for _, l := range labels {
		for _, t := range terms {
			if strings.Contains(l, t) || strings.Contains(t, l) {
				return true
			}
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
