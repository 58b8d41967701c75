package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthenticated marks 401-class responses. It is the one API failure
// that is not locally recoverable: the web layer must tear down the
// session and redirect to login instead of rendering an inline error.
var ErrUnauthenticated = errors.New("not authenticated")

// Error is the normalized failure for any non-2xx backend response. The
// Message is the backend's `message` field when one was sent, otherwise a
// generic failure string; panels surface it verbatim.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap lets 401 responses match ErrUnauthenticated via errors.Is.
func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthenticated
	}
	return nil
}

// IsAuthError reports whether err should force a session teardown.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// Client is a stateless wrapper over the SmartEvents REST backend. It
// holds no session state: the bearer token is passed per call and treated
// as immutable for the duration of the request. No call is retried or
// deduplicated.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (e.g. "http://host/api/v1").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
// Intended for tests.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// errorBody matches the backend's error payload shape.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes a JSON response into out (when out is
// non-nil). A non-empty token is attached as a bearer Authorization
// header. Non-2xx responses return *Error; transport failures return a
// wrapped error with no status.
// PRE: path starts with "/"; body is JSON-marshalable or nil
// POST: on success out is populated; no side effects beyond the network call
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observeRequest(method, path, "transport_error", time.Since(start))
		slog.Error("api_request_failed", "method", method, "path", path, "request_id", requestID, "error", err.Error())
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	observeRequest(method, path, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: genericMessage(resp.StatusCode)}
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Message != "" {
			apiErr.Message = eb.Message
		}
		slog.Warn("api_request_rejected", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// genericMessage is the fallback when the backend sends no message field.
func genericMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "not authenticated"
	case status == http.StatusForbidden:
		return "not allowed"
	case status >= 500:
		return "the server could not complete the request"
	default:
		return fmt.Sprintf("request failed (%s)", http.StatusText(status))
	}
}
