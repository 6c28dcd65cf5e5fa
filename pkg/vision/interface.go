package vision

import (
	"context"
	"net/url"

	"golang.org/x/oauth2"
)

// IVision defines the image classification provider API.
// Implementations are safe for concurrent use.
type IVision interface {
	ExchangeToken(ctx context.Context, apiKey, secretKey string) (*oauth2.Token, error)
	Classify(ctx context.Context, accessToken, imageBase64 string, extra url.Values) (*ClassifyResponse, error)
}
