// Package apiclient implements the single chokepoint for all outbound calls
// to the AMLSentinel backend: uniform URL construction, bearer-token
// attachment, JSON serialization, and error normalization.
//
// The client is stateless between calls. It never retries, caches, or
// deduplicates requests; every failure surfaces exactly one error to the
// caller, which decides whether to retry or report.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"amlsentinel/internal/observability/tracing"
)

// Client issues JSON requests against a fixed base URL.
// A zero Client is not usable; construct one with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// New creates a Client with the given configuration and token provider.
// Passing a nil provider is equivalent to NoToken().
func New(cfg Config, tokens TokenProvider) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = NoToken()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens: tokens,
	}, nil
}

// Get issues a GET request and decodes the JSON response body into out.
// Pass a nil out to discard the response body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON-serialized body and decodes the
// JSON response body into out. A nil body sends no request body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON-serialized body and decodes the
// JSON response body into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request and decodes the JSON response body into out.
// Pass a nil out to discard the response body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// GetRaw issues a GET request and returns the raw response body and its
// Content-Type. It is used for binary payloads (PDF, CSV, ZIP) that must not
// be decoded as JSON. Error responses are normalized exactly as for Get.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, string, error) {
	return c.doRaw(ctx, http.MethodGet, path, nil)
}

// PostRaw issues a POST request with a JSON-serialized body and returns the
// raw response body and its Content-Type. It is used for bulk exports that
// respond with a ZIP archive.
func (c *Client) PostRaw(ctx context.Context, path string, body any) ([]byte, string, error) {
	return c.doRaw(ctx, http.MethodPost, path, body)
}

// do executes a JSON request/response round trip.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	respBody, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// doRaw executes a request and returns the raw success body with its
// Content-Type header.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, string, error) {
	var contentType string
	respBody, err := c.roundTripFn(ctx, method, path, body, func(resp *http.Response) {
		contentType = resp.Header.Get("Content-Type")
	})
	if err != nil {
		return nil, "", err
	}
	return respBody, contentType, nil
}

// roundTrip builds, sends, and post-processes one request. On a non-success
// status it returns the normalized *APIError; the success body is returned
// unmodified.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any) ([]byte, error) {
	return c.roundTripFn(ctx, method, path, body, nil)
}

func (c *Client) roundTripFn(ctx context.Context, method, path string, body any, inspect func(*http.Response)) ([]byte, error) {
	requestID := uuid.New().String()

	ctx, span := tracing.GetTracer().Start(ctx, "apiclient."+method)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// An absent token means the header is omitted entirely; an empty or
	// placeholder Bearer value is never sent.
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("backend request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		recordTransportError(method)
		slog.Warn("backend request failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return nil, newTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	recordRequest(method, resp.StatusCode)
	recordDuration(method, duration.Seconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := normalizeError(resp.StatusCode, respBody)
		slog.Warn("backend returned error",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return nil, apiErr
	}

	slog.Debug("backend response",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration))

	if inspect != nil {
		inspect(resp)
	}
	return respBody, nil
}
