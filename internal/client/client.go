// Package client implements the token-bearing HTTP client for the RepoMarket
// backend. It is the single point of outbound communication: it attaches the
// bearer credential to every request, normalizes every failure into an
// *APIError, and fires the global 401/403 hooks regardless of which call
// triggered the response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the documented local development endpoint, used when
	// no base URL is configured.
	DefaultBaseURL = "http://localhost:8081"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second
)

// TokenSource supplies the current bearer token, or "" when logged out.
// The session manager provides the real implementation; the client itself
// holds no credential state.
type TokenSource func() string

// Config carries the construction-time settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps outbound requests to the backend API.
type Client struct {
	baseURL  string
	http     *http.Client
	log      zerolog.Logger
	validate *validator.Validate

	mu             sync.RWMutex
	tokens         TokenSource
	onUnauthorized func()
	onForbidden    func()
}

// New builds a Client. Zero-value config fields fall back to the local
// development defaults.
func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      log,
		validate: validator.New(),
	}
}

// SetTokenSource installs the credential supplier. Requests made with no
// source (or an empty token) carry no Authorization header.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// OnUnauthorized registers the global 401 handler. It runs for every 401,
// independent of which call triggered it.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// OnForbidden registers the global 403 handler.
func (c *Client) OnForbidden(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onForbidden = fn
}

// Get issues a GET and decodes the unwrapped payload into out (if non-nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("response decode failed")
		return errBadResponse()
	}
	return nil
}

// do executes one request and applies the global response policy.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindRequest, Message: "Request failed. Please try again."}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &APIError{Kind: KindRequest, Message: "Request failed. Please try again."}
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(err, method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: "No response from server. Please check your connection."}
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		data, apiErr := unwrap(raw)
		if apiErr != nil {
			return nil, apiErr
		}
		return data, nil
	}
	return nil, c.statusError(resp.StatusCode, raw, method, path)
}

func (c *Client) token() string {
	c.mu.RLock()
	ts := c.tokens
	c.mu.RUnlock()
	if ts == nil {
		return ""
	}
	return ts()
}

// transportError distinguishes timeouts from connection-level failures.
// Neither touches the session: both are safe to retry.
func (c *Client) transportError(err error, method, path string) *APIError {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		c.log.Warn().Str("method", method).Str("path", path).Msg("request timed out")
		return &APIError{Kind: KindTimeout, Message: "Request timed out. Please try again."}
	}
	c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed to reach server")
	return &APIError{Kind: KindNetwork, Message: "No response from server. Please check your connection."}
}

// statusError maps a non-2xx response to a normalized error and fires the
// global side effects for authentication failures.
func (c *Client) statusError(status int, body []byte, method, path string) *APIError {
	msg := backendMessage(body)
	c.mu.RLock()
	onUnauthorized, onForbidden := c.onUnauthorized, c.onForbidden
	c.mu.RUnlock()

	switch {
	case status == http.StatusUnauthorized:
		c.fire(onUnauthorized)
		if msg == "" {
			msg = "Invalid credentials"
		}
		return &APIError{Kind: KindUnauthorized, Status: status, Message: msg}

	case status == http.StatusForbidden:
		c.fire(onForbidden)
		return &APIError{Kind: KindForbidden, Status: status, Message: "Access denied"}

	case status >= http.StatusInternalServerError:
		c.log.Error().Int("status", status).Str("method", method).Str("path", path).Msg("server error")
		return &APIError{Kind: KindServer, Status: status, Message: "Server error occurred. Please check server logs."}

	default:
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status %d", status)
		}
		return &APIError{Kind: KindRequest, Status: status, Message: msg}
	}
}

func (c *Client) fire(fn func()) {
	if fn != nil {
		fn()
	}
}
