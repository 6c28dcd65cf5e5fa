package http

import (
	"time"

	"proof-timeline/internal/verification"
)

// --- Request DTOs ---

type sessionReq struct {
	TaskID string
	Kind   verification.Kind
}

type captureReq struct {
	sessionReq `json:"-"`
	Image      string `json:"image" binding:"required"`
}

func (r captureReq) toInput() verification.CaptureInput {
	return verification.CaptureInput{
		TaskID: r.TaskID,
		Kind:   r.Kind,
		Image:  r.Image,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID               string     `json:"id"`
	TaskID           string     `json:"task_id"`
	TaskTitle        string     `json:"task_title"`
	Kind             string     `json:"kind"`
	Phase            string     `json:"phase"`
	Terminal         bool       `json:"terminal"`
	RequiredKeywords []string   `json:"required_keywords"`
	Anchor           time.Time  `json:"anchor"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	AttemptCount     int        `json:"attempt_count"`
	LastError        string     `json:"last_error,omitempty"`
}

func newSessionResp(s verification.Session) sessionResp {
	resp := sessionResp{
		ID:               s.ID,
		TaskID:           s.TaskID,
		TaskTitle:        s.TaskTitle,
		Kind:             string(s.Kind),
		Phase:            string(s.Phase),
		Terminal:         s.Terminal(),
		RequiredKeywords: s.RequiredKeywords,
		Anchor:           s.Anchor,
		AttemptCount:     s.AttemptCount,
		LastError:        s.LastError,
	}
	if !s.Deadline.IsZero() {
		d := s.Deadline
		resp.Deadline = &d
	}
	return resp
}

type listResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func newListResp(sessions []verification.Session) listResp {
	out := listResp{Sessions: make([]sessionResp, 0, len(sessions))}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, newSessionResp(s))
	}
	return out
}

type labelResp struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type captureResp struct {
	Success          bool        `json:"success"`
	Reason           string      `json:"reason"`
	MatchedKeywords  []string    `json:"matched_keywords"`
	MissingKeywords  []string    `json:"missing_keywords"`
	RecognizedLabels []labelResp `json:"recognized_labels"`
	SettledAmount    int         `json:"settled_amount"`
	Session          sessionResp `json:"session"`
}

func newCaptureResp(o verification.CaptureOutput) captureResp {
	resp := captureResp{
		Success:          o.Success,
		Reason:           o.Reason,
		MatchedKeywords:  nonNil(o.Verdict.Matched),
		MissingKeywords:  nonNil(o.Verdict.Unmatched),
		RecognizedLabels: make([]labelResp, 0, len(o.Labels)),
		SettledAmount:    o.SettledAmount,
		Session:          newSessionResp(o.Session),
	}
	for _, l := range o.Labels {
		resp.RecognizedLabels = append(resp.RecognizedLabels, labelResp{Text: l.Text, Confidence: l.Confidence})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
