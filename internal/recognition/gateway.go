package recognition

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"proof-timeline/pkg/log"
	"proof-timeline/pkg/vision"
)

const DefaultThreshold = 0.5

// Config tunes the gateway.
type Config struct {
	// Threshold is the exclusive lower bound on label confidence.
	Threshold float64
	// Extra holds additional form fields sent with every classify call.
	Extra map[string]string
}

type implGateway struct {
	l         log.Logger
	client    vision.IVision
	tokens    *TokenCache
	threshold float64
	extra     url.Values
}

// New creates a Gateway. tokens is shared by every caller of this gateway.
func New(l log.Logger, client vision.IVision, tokens *TokenCache, cfg Config) Gateway {
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	extra := url.Values{}
	for k, v := range cfg.Extra {
		extra.Set(k, v)
	}
	return &implGateway{
		l:         l,
		client:    client,
		tokens:    tokens,
		threshold: threshold,
		extra:     extra,
	}
}

func (g *implGateway) AccessToken(ctx context.Context, creds Credentials) (string, error) {
	tok, err := g.token(ctx, creds, false)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func (g *implGateway) token(ctx context.Context, creds Credentials, force bool) (*oauth2.Token, error) {
	if !creds.Valid() {
		return nil, ErrConfiguration
	}
	tok, err := g.tokens.Get(creds, force, func() (*oauth2.Token, error) {
		g.l.Debugf(ctx, "recognition.gateway: exchanging token (force=%v)", force)
		return g.client.ExchangeToken(ctx, creds.APIKey, creds.SecretKey)
	})
	if err != nil {
		return nil, classifyErr("token", err)
	}
	return tok, nil
}

func (g *implGateway) Classify(ctx context.Context, creds Credentials, imageBase64 string) (Result, error) {
	if !creds.Valid() {
		return Result{}, ErrConfiguration
	}
	image := StripDataURI(imageBase64)

	tok, err := g.token(ctx, creds, false)
	if err != nil {
		return Result{}, err
	}

	resp, err := g.client.Classify(ctx, tok.AccessToken, image, g.extra)
	if err != nil {
		var apiErr *vision.APIError
		if !errors.As(err, &apiErr) {
			return Result{}, classifyErr("classify", err)
		}

		// The token may have been revoked early: refresh once and retry once.
		g.l.Warnf(ctx, "recognition.gateway: classify failed (%v), retrying with a fresh token", err)
		tok, err = g.token(ctx, creds, true)
		if err != nil {
			return Result{}, err
		}
		resp, err = g.client.Classify(ctx, tok.AccessToken, image, g.extra)
		if err != nil {
			return Result{}, classifyErr("classify", err)
		}
	}

	res := Result{
		ProviderErrorCode: resp.ErrorCode,
		Raw:               resp.Raw,
	}
	for _, lb := range resp.Result {
		if lb.Score > g.threshold && strings.TrimSpace(lb.Keyword) != "" {
			res.Labels = append(res.Labels, Label{Text: lb.Keyword, Confidence: lb.Score})
		}
	}
	if len(res.Labels) == 0 {
		return res, ErrRecognitionEmpty
	}
	return res, nil
}

// StripDataURI removes a leading "data:image/...;base64," prefix.
func StripDataURI(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ";base64,"); i >= 0 {
		return s[i+len(";base64,"):]
	}
	return s
}

func classifyErr(op string, err error) error {
	var apiErr *vision.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Op:         op,
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}
	return &NetworkError{Op: op, Err: err}
}
