package glapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the local development backend
const DefaultBaseURL = "http://localhost:3000/api/v1"

// DefaultTimeout bounds every backend call; a timed-out call surfaces as a
// status-0 APIError like any other transport failure
const DefaultTimeout = 20 * time.Second

// TokenSource supplies the bearer credential attached to outgoing requests.
// Implementations own the credential's lifecycle: the web layer binds one to
// an admin session record, the CLI to a token file.
type TokenSource interface {
	// Token returns the current access token, or empty if none is stored
	Token(ctx context.Context) (string, error)
	// Invalidate discards the stored access token. Called by the client when
	// the backend rejects the credential; must be idempotent.
	Invalidate(ctx context.Context) error
}

// StaticToken is a TokenSource holding a fixed token. Invalidate is a no-op;
// useful for one-shot calls and tests.
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) { return string(t), nil }

func (t StaticToken) Invalidate(ctx context.Context) error { return nil }

// Config holds client configuration
type Config struct {
	// BaseURL is the backend API mount (default: DefaultBaseURL)
	BaseURL string
	// Timeout bounds each request (default: DefaultTimeout)
	Timeout time.Duration
	// Logger is used for credential-teardown diagnostics (optional)
	Logger *slog.Logger
}

// Client is the single chokepoint through which every backend call passes.
// It attaches the bearer token, dispatches exactly once (no retries), and
// normalizes every failure into an *APIError before it reaches callers.
type Client struct {
	baseURL    string
	tokens     TokenSource
	logger     *slog.Logger
	httpClient *http.Client
}

// New creates a client for the Gladialore admin backend
func New(cfg Config, tokens TokenSource) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend mount
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one JSON request. body (if non-nil) is marshalled as JSON;
// result (if non-nil) receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newTransportError(fmt.Errorf("failed to marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, result)
}

// newRequest builds the request and runs the auth-attach stage. A failing
// token read aborts before dispatch.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("failed to read token: %w", err))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// send runs the dispatch and error-normalize stages. A 401 is the only
// condition that mutates state: the token source is invalidated before the
// error propagates.
func (c *Client) send(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			if err := c.tokens.Invalidate(req.Context()); err != nil {
				c.logger.Warn("failed to invalidate token after 401",
					slog.String("error", err.Error()))
			}
		}
		return newStatusError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return newTransportError(fmt.Errorf("failed to parse response: %w", err))
		}
	}

	return nil
}

// get performs a GET request
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// post performs a POST request
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, result)
}

// patch performs a PATCH request
func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, result)
}

// put performs a PUT request
func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, result)
}

// delete performs a DELETE request
func (c *Client) delete(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, result)
}
