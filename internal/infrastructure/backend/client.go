// Package backend implements the REST client for the BakeryHub backend
// collaborator. All storefront state mutations against the server go through
// here; no endpoint is retried automatically and every failure is surfaced
// exactly once to the caller.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/api/metrics"
)

const defaultRequestTimeout = 15 * time.Second

// TokenSource returns the current access token, or "" when unauthenticated.
// The session store supplies it so the client never holds auth state itself.
type TokenSource func() string

// Client issues REST calls against the backend base URL. It satisfies the
// ports.AccountsAPI, ports.CatalogAPI, ports.OrdersAPI, ports.TenantsAPI and
// ports.StatisticsAPI interfaces.
type Client struct {
	baseURL  string
	http     *http.Client
	token    TokenSource
	validate *validator.Validate
	log      zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests use the
// httptest server's client).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource wires the session store's access token into every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// New creates a Client for the given base URL (e.g. "http://localhost:5000/api").
func New(baseURL string, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultRequestTimeout},
		token:    func() string { return "" },
		validate: validator.New(),
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkPayload runs struct-tag validation on an outbound payload. A failing
// payload blocks the request entirely; nothing is sent to the backend.
func (c *Client) checkPayload(in any) error {
	if err := c.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses are decoded into an *APIError carrying the
// backend's problem-details envelope.
func (c *Client) do(ctx context.Context, group, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(group).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(group, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(group, statusClass(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("detail", apiErr.UserMessage()).
			Msg("backend request failed")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
