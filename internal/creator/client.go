// Package creator is a minimal Zoho Creator REST API v2 client. It covers
// the record operations the widget performs (list, get, create, update,
// delete) for a single owner/application pair, maps API failures onto
// sentinel errors, and retries rate-limited requests with jittered
// exponential backoff.
package creator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pgrowth/tppgUtil/internal/retry"
)

const (
	requestTimeout = 30 * time.Second

	// Result codes embedded in the Creator response envelope.
	codeSuccess   = 3000
	codeDuplicate = 3001
	codeNoRecords = 3100

	// Retry policy for 429 responses.
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultMaxDelay    = 8 * time.Second

	// MaxPageSize is the largest page Creator serves per request.
	MaxPageSize = 200
)

// TokenFunc supplies the OAuth token for a request. It is called once per
// attempt so a refreshed token is picked up mid-retry.
type TokenFunc func(ctx context.Context) (string, error)

// Client talks to the Creator record API for one owner/application pair.
type Client struct {
	baseURL string
	owner   string
	app     string
	client  *http.Client
	tokenFn TokenFunc

	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Intended for testing.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithToken uses a fixed OAuth token for every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.tokenFn = func(context.Context) (string, error) { return token, nil }
	}
}

// WithTokenFunc supplies tokens dynamically, e.g. from the keychain.
func WithTokenFunc(fn TokenFunc) Option {
	return func(c *Client) { c.tokenFn = fn }
}

// WithRetry overrides the rate-limit retry policy. maxAttempts <= 1
// disables retries.
func WithRetry(maxAttempts int, base, max time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
		c.baseDelay = base
		c.maxDelay = max
	}
}

// New returns a Client for the given data center, account owner, and
// application link name.
func New(dc DataCenter, owner, app string, opts ...Option) *Client {
	c := &Client{
		baseURL:     BaseURL(dc),
		owner:       owner,
		app:         app,
		client:      &http.Client{Timeout: requestTimeout},
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		maxDelay:    defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Owner returns the account owner name the client is scoped to.
func (c *Client) Owner() string { return c.owner }

// App returns the application link name the client is scoped to.
func (c *Client) App() string { return c.app }

// --- API response envelope ---

// response is the envelope every Creator v2 endpoint returns.
type response struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// err maps the envelope's result code to a sentinel where one applies.
func (r response) err() error {
	switch r.Code {
	case codeSuccess:
		return nil
	case codeNoRecords:
		return fmt.Errorf("%w: api code %d: %s", ErrNotFound, r.Code, r.Message)
	case codeDuplicate:
		return fmt.Errorf("%w: api code %d: %s", ErrConflict, r.Code, r.Message)
	}
	return fmt.Errorf("creator: api code %d: %s", r.Code, r.Message)
}

// --- HTTP plumbing ---

// do sends one API request, retrying 429 responses with jittered
// exponential backoff, and decodes the response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out *response) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("creator: failed to encode request: %w", err)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	cfg := retry.Config{MaxAttempts: c.maxAttempts, BaseDelay: c.baseDelay, MaxDelay: c.maxDelay}
	rateLimited := func(err error) bool { return errors.Is(err, ErrRateLimited) }
	return retry.Do(ctx, cfg, rateLimited, func() error {
		return c.attempt(ctx, method, u, payload, out)
	})
}

// attempt performs a single HTTP exchange. Only rate limiting surfaces
// as a retryable error.
func (c *Client) attempt(ctx context.Context, method, u string, payload []byte, out *response) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("creator: failed to build request: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("creator: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("creator: failed to decode response: %w", err)
	}
	return nil
}

// token resolves the OAuth token for this attempt.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokenFn == nil {
		return "", fmt.Errorf("%w: no oauth token configured (run 'tppg auth login')", ErrUnauthorized)
	}
	token, err := c.tokenFn(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return token, nil
}

// statusError maps a non-2xx HTTP status to a sentinel where one applies.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrUnauthorized, resp.StatusCode, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	case http.StatusConflict:
		return fmt.Errorf("%w: status %d: %s", ErrConflict, resp.StatusCode, msg)
	}
	return fmt.Errorf("creator: unexpected status %d: %s", resp.StatusCode, msg)
}

