package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/truthos/meeting-intel/pkg/config"
)

// forwardedHeaders is the allow-list of inbound headers that may cross
// to the upstream backend. Nothing else from the inbound request is
// forwarded.
var forwardedHeaders = []string{
	"Authorization",
	"X-User-Role",
}

// Response carries the upstream status and JSON body back to the handler
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// OK reports whether the upstream answered with a success status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client relays requests to the upstream backend. It performs no
// business logic of its own; the upstream owns validation, persistence
// and authorization for the relayed routes.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a relay client for the configured backend base URL
func NewClient(cfg *config.BackendConfig) *Client {
	timeout := 15 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	base := "http://localhost:8000"
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}
	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// Forward sends method+path to the backend with the allow-listed subset
// of inbound headers and an optional JSON body, and returns the
// upstream status and body. A transport failure or a non-JSON upstream
// body is reported as an error; the caller converts that into the fixed
// internal-error envelope.
func (c *Client) Forward(ctx context.Context, method, path string, inbound http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for _, name := range forwardedHeaders {
		// Absence is preserved: a missing inbound header is not defaulted
		if v := inbound.Get(name); v != "" {
			req.Header.Set(name, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("backend returned non-JSON body (status %d)", resp.StatusCode)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
