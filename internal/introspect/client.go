// Package introspect fetches introspection results from GraphQL endpoints.
package introspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 50 << 20

// Options configures a Client.
type Options struct {
	Timeout       time.Duration
	Retries       int
	RetryInterval time.Duration
	UserAgent     string
	Logger        *slog.Logger
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{
		Timeout:       30 * time.Second,
		Retries:       2,
		RetryInterval: time.Second,
		UserAgent:     "gqlmd/1.0",
	}
}

// StatusError is returned when an endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// Client runs the introspection query against an endpoint.
type Client struct {
	http   *http.Client
	dialer *wsDialer
	opts   Options
	logger *slog.Logger
}

// NewClient creates a client with the given options.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http:   &http.Client{Timeout: opts.Timeout},
		dialer: newWSDialer(opts),
		opts:   opts,
		logger: logger,
	}
}

// Fetch runs the introspection query against endpoint and returns the raw
// response, {"data": {"__schema": ...}}. http and https endpoints receive a
// POST; ws and wss endpoints are queried over graphql-transport-ws.
func (c *Client) Fetch(ctx context.Context, endpoint string, headers http.Header) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return c.fetchHTTP(ctx, u.String(), headers)
	case "ws", "wss":
		c.logger.Debug("introspecting over websocket", "endpoint", u.Redacted())
		return c.dialer.fetch(ctx, u.String(), headers)
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
}

func (c *Client) fetchHTTP(ctx context.Context, endpoint string, headers http.Header) ([]byte, error) {
	body, err := json.Marshal(introspectionRequest())
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	// The first attempt goes out at once, retries wait RetryInterval.
	limiter := rate.NewLimiter(rate.Every(c.opts.RetryInterval), 1)

	var lastErr error
	for attempt := 0; attempt <= c.opts.Retries; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		data, err := c.post(ctx, endpoint, headers, body)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !retryable(ctx, err) {
			break
		}
		c.logger.Warn("introspection failed, retrying", "endpoint", endpoint, "attempt", attempt+1, "err", err)
	}
	return nil, lastErr
}

func (c *Client) post(ctx context.Context, endpoint string, headers http.Header, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(bytes.TrimSpace(data)), 200)}
	}
	return data, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
