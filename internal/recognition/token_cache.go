package recognition

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTokenCacheSize    = 64
	DefaultTokenSafetyMargin = 300 * time.Second
)

// TokenCache holds one access token per credential pair. Concurrent misses
// for the same pair share a single exchange.
type TokenCache struct {
	tokens *lru.Cache[string, *oauth2.Token]
	group  singleflight.Group
	margin time.Duration
	now    func() time.Time
}

// NewTokenCache creates a cache. size <= 0 and margin < 0 take the defaults,
// a nil now uses time.Now.
func NewTokenCache(size int, margin time.Duration, now func() time.Time) (*TokenCache, error) {
	if size <= 0 {
		size = DefaultTokenCacheSize
	}
	if margin < 0 {
		margin = DefaultTokenSafetyMargin
	}
	if now == nil {
		now = time.Now
	}
	tokens, err := lru.New[string, *oauth2.Token](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}
	return &TokenCache{tokens: tokens, margin: margin, now: now}, nil
}

// Get returns a usable token for creds, calling fetch on a miss, on expiry
// within the safety margin, or when force is set.
func (c *TokenCache) Get(creds Credentials, force bool, fetch func() (*oauth2.Token, error)) (*oauth2.Token, error) {
	key := creds.cacheKey()
	if force {
		c.tokens.Remove(key)
	} else if tok, ok := c.tokens.Get(key); ok && c.usable(tok) {
		return tok, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have refreshed while we waited.
		if !force {
			if tok, ok := c.tokens.Get(key); ok && c.usable(tok) {
				return tok, nil
			}
		}
		tok, err := fetch()
		if err != nil {
			return nil, err
		}
		c.tokens.Add(key, tok)
		return tok, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

// usable reports whether now < expiry - margin. A token without expiry is
// never reused.
func (c *TokenCache) usable(tok *oauth2.Token) bool {
	if tok == nil || tok.AccessToken == "" || tok.Expiry.IsZero() {
		return false
	}
	return c.now().Before(tok.Expiry.Add(-c.margin))
}
