// Package api is the typed HTTP client for the Cherry backend. Each
// operation issues exactly one request: no retries, no caching. 400
// responses surface the server's own message; any other failure status
// maps to a generic UnexpectedError naming the operation.
package api

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

	"github.com/google/uuid"
)

const defaultBaseURL = "https://cherrywebserver.joshroundy.dev:8080"

// Auth carries the bearer credential plus the User-ID identity header that
// every authenticated endpoint expects.
type Auth struct {
	Token  string
	UserID string
}

// Client talks to one backend instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the given base URL. An empty baseURL means
// the production backend.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorShape selects how a 400 body is decoded for a given endpoint. The
// backend is not uniform here: most endpoints return raw text, the JSON-body
// endpoints return {"error": ...}. Callers branch per endpoint, never by
// sniffing the response.
type errorShape int

const (
	errText errorShape = iota
	errJSON
)

type call struct {
	method string
	path   string
	query  url.Values
	auth   *Auth
	body   any
	header map[string]string
	op     string
	shape  errorShape
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if cl.auth != nil {
		req.Header.Set("Authorization", "Bearer "+cl.auth.Token)
		req.Header.Set("User-ID", cl.auth.UserID)
	}
	for k, v := range cl.header {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", cl.op, err)
		}
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		return c.badRequest(cl, resp.Body)
	}

	return &UnexpectedError{Op: cl.op, Status: resp.StatusCode}
}

func (c *Client) badRequest(cl call, body io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	switch cl.shape {
	case errJSON:
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Error == "" {
			return &BadRequestError{Op: cl.op, Message: "Invalid request data"}
		}
		return &BadRequestError{Op: cl.op, Message: payload.Error}
	default:
		return &BadRequestError{Op: cl.op, Message: string(raw)}
	}
}
