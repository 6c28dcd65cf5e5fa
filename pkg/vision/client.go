package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultTokenURL    = "https://aip.baidubce.com/oauth/2.0/token"
	DefaultClassifyURL = "https://aip.baidubce.com/rest/2.0/image-classify/v2/advanced_general"
	DefaultTimeout     = 15 * time.Second
)

// ErrTransport marks failures to reach the provider at all.
var ErrTransport = errors.New("vision transport error")

// Client is the image classification API client.
type Client struct {
	tokenURL    string
	classifyURL string
	httpClient  *http.Client
	now         func() time.Time
}

// New creates a new client with the default endpoints.
func New() *Client {
	return &Client{
		tokenURL:    DefaultTokenURL,
		classifyURL: DefaultClassifyURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		now:         time.Now,
	}
}

// WithTokenURL overrides the token endpoint.
func (c *Client) WithTokenURL(u string) *Client {
	c.tokenURL = u
	return c
}

// WithClassifyURL overrides the classify endpoint.
func (c *Client) WithClassifyURL(u string) *Client {
	c.classifyURL = u
	return c
}

// WithHTTPClient sets the HTTP client used for every call.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// ExchangeToken trades the credential pair for an access token. The
// credentials travel in the query string, as the provider requires.
func (c *Client) ExchangeToken(ctx context.Context, apiKey, secretKey string) (*oauth2.Token, error) {
	q := url.Values{}
	q.Set("grant_type", "client_credentials")
	q.Set("client_id", apiKey)
	q.Set("client_secret", secretKey)

	body, status, err := c.post(ctx, c.tokenURL+"?"+q.Encode(), "application/json", nil)
	if err != nil {
		return nil, err
	}

	var tr TokenResponse
	if jsonErr := json.Unmarshal(body, &tr); jsonErr != nil {
		return nil, &APIError{StatusCode: status, Message: fmt.Sprintf("failed to decode token response: %v", jsonErr)}
	}
	if tr.Error != "" {
		return nil, &APIError{StatusCode: status, Code: tr.Error, Message: tr.ErrorDescription}
	}
	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Message: http.StatusText(status)}
	}
	if tr.AccessToken == "" {
		return nil, &APIError{StatusCode: status, Message: "empty access token"}
	}

	tok := &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   "Bearer",
	}
	if tr.ExpiresIn > 0 {
		tok.Expiry = c.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok, nil
}

// Classify submits a base64 image (no data URI prefix) for general object
// recognition. extra carries optional provider parameters such as baike_num.
func (c *Client) Classify(ctx context.Context, accessToken, imageBase64 string, extra url.Values) (*ClassifyResponse, error) {
	if imageBase64 == "" {
		return nil, fmt.Errorf("no image provided")
	}

	form := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			form.Add(k, v)
		}
	}
	form.Set("image", imageBase64)

	endpoint := c.classifyURL + "?access_token=" + url.QueryEscape(accessToken)
	body, status, err := c.post(ctx, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
	}

	var cr ClassifyResponse
	if jsonErr := json.Unmarshal(body, &cr); jsonErr != nil {
		return nil, &APIError{StatusCode: status, Message: fmt.Sprintf("failed to decode classify response: %v", jsonErr)}
	}
	cr.Raw = body
	if cr.ErrorCode != 0 {
		return &cr, &APIError{StatusCode: status, Code: strconv.Itoa(cr.ErrorCode), Message: cr.ErrorMsg}
	}
	return &cr, nil
}

func (c *Client) post(ctx context.Context, endpoint, contentType string, body io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	return data, resp.StatusCode, nil
}
