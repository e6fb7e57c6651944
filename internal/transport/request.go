package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pulibrary/ostiposter/pkg/errors"
)

// maxErrorBody caps how much of a rejected response is kept in the error.
const maxErrorBody = 4096

// Response is the registry's answer to an accepted payload.
type Response struct {
	StatusCode int
	Body       []byte
}

// NewRequest builds a JSON POST request for the payload.
func NewRequest(ctx context.Context, endpoint string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewConfigError("transport", "invalid registry endpoint "+endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// DecodeResponse reads resp and returns an APIError for non-2xx statuses.
func DecodeResponse(resp *http.Response, endpoint string) (*Response, error) {
	defer resp.Body.Close() //nolint:errcheck // body fully read below

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := body
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, errors.NewAPIError(endpoint, resp.StatusCode, string(bytes.TrimSpace(msg)))
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
