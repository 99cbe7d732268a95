package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crud-dashboard/pkg/errors"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
)

// RequestOptions configures a single call to the remote API.
type RequestOptions struct {
	Method  string            // defaults to GET
	Body    any               // JSON-encoded when non-nil
	Headers map[string]string // merged over the default JSON headers
}

// Client is a thin JSON client for the remote REST API. All endpoints are
// resolved against a single base origin.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope is the error payload of the remote API. Error is kept raw
// because some deployments send it as a plain string.
type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type issuesEnvelope struct {
	Issues []struct {
		Message string `json:"message"`
	} `json:"issues"`
}

// Do calls endpoint and decodes a JSON answer into out.
//
// A 204 or an empty body leaves out untouched. A non-2xx answer is returned
// as *errors.APIError, a failed round trip as *errors.TransportError. Every
// failure is logged before it is returned.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	err := c.do(ctx, method, endpoint, opts, out)
	if err != nil {
		logger.WithContext(ctx, c.log).Error("api request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, opts RequestOptions, out any) error {
	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAPIError(resp.StatusCode, extractErrorMessage(data))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// extractErrorMessage looks for error.issues[0].message, then message.
// It returns "" when the body carries neither.
func extractErrorMessage(data []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}

	if len(env.Error) > 0 {
		var issues issuesEnvelope
		if err := json.Unmarshal(env.Error, &issues); err == nil &&
			len(issues.Issues) > 0 && issues.Issues[0].Message != "" {
			return issues.Issues[0].Message
		}
	}

	return env.Message
}
