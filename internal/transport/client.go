// Package transport submits registry payloads over HTTP.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/logging"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client posts payloads to a registry endpoint.
type Client struct {
	http     *http.Client
	auth     Authenticator
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout. The HTTP client is copied first, so
// a client passed to WithHTTPClient keeps its own timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// New creates a client for endpoint using auth. A nil auth sends no credentials.
func New(endpoint string, auth Authenticator, opts ...Option) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	c := &Client{
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		auth:     auth,
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the registry URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts records and discards the response body after checking the status.
func (c *Client) Submit(ctx context.Context, records []osti.Record) error {
	_, err := c.Post(ctx, records)
	return err
}

// Post sends records as the exact payload osti.Marshal produces. It does not
// retry; a non-2xx answer is returned as an APIError.
func (c *Client) Post(ctx context.Context, records []osti.Record) (*Response, error) {
	if c.endpoint == "" {
		return nil, errors.NewConfigError("transport", "registry endpoint is empty", errors.ErrNotConfigured)
	}

	body, err := osti.Marshal(records)
	if err != nil {
		return nil, errors.NewParseError("json", "", "encoding payload", err)
	}

	req, err := NewRequest(ctx, c.endpoint, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, &errors.APIError{Endpoint: c.endpoint, Message: "request failed", Err: err}
	}

	result, err := DecodeResponse(resp, c.endpoint)
	if err != nil {
		msg := "Registry rejected payload"
		if errors.IsRegistryUnavailable(err) {
			msg = "Registry unavailable, payload not accepted"
		}
		logging.FromContext(ctx).Warn().Err(err).Str("endpoint", c.endpoint).Msg(msg)
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("endpoint", c.endpoint).
		Int("status", result.StatusCode).
		Int("records", len(records)).
		Msg("Registry accepted payload")
	return result, nil
}

// Do performs an HTTP request with authentication applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.auth.Apply(req)
	return c.http.Do(req)
}
