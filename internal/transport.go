package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ChatEndpoint    = "/chat"
	RunCodeEndpoint = "/run_code"

	// maxErrorBody bounds how much of a failed response is read for its message
	maxErrorBody = 64 << 10
)

// HTTPClient is the part of *http.Client the transport needs
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ HTTPClient = (*http.Client)(nil)

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the body returned by POST /chat
type ChatResponse struct {
	Response *string `json:"response"`
	Error    string  `json:"error,omitempty"`
}

// RunCodeRequest is the body of POST /run_code
type RunCodeRequest struct {
	Code string `json:"code"`
}

// RunCodeResponse is the body returned by POST /run_code
type RunCodeResponse struct {
	Output *string `json:"output"`
	Error  string  `json:"error,omitempty"`
}

// Client talks to the conversational and code-execution backends
type Client struct {
	baseURL string
	http    HTTPClient
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(c HTTPClient) ClientOption {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded, relying on
// the transport's own limits. It applies to the client configured so far: an
// injected *http.Client keeps its transport, any other HTTPClient is left as is.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		hc, ok := cl.http.(*http.Client)
		if !ok {
			return
		}
		bounded := *hc
		bounded.Timeout = d
		cl.http = &bounded
	}
}

// NewClient creates a Client for the backend at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SendChatMessage posts a user message and returns the assistant's raw text
func (c *Client) SendChatMessage(ctx context.Context, text, sessionID string) (string, error) {
	var resp ChatResponse
	if err := c.postJSON(ctx, ChatEndpoint, ChatRequest{Message: text, SessionID: sessionID}, &resp); err != nil {
		return "", err
	}
	if resp.Response == nil {
		return "", &TransportError{Endpoint: ChatEndpoint, Message: resp.Error, Err: errors.New("response field missing")}
	}
	return *resp.Response, nil
}

// RunRemoteCode submits code for execution and returns the captured output
func (c *Client) RunRemoteCode(ctx context.Context, code string) (string, error) {
	var resp RunCodeResponse
	if err := c.postJSON(ctx, RunCodeEndpoint, RunCodeRequest{Code: code}, &resp); err != nil {
		return "", err
	}
	if resp.Output == nil {
		return "", &TransportError{Endpoint: RunCodeEndpoint, Message: resp.Error, Err: errors.New("output field missing")}
	}
	return *resp.Output, nil
}

// Ping checks that something answers HTTP at the base URL. Any status counts.
func (c *Client) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	LogDebug("POST %s (%d bytes)", req.URL, len(payload))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	LogDebug("POST %s -> %d in %s", endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// errorMessage pulls {"error": "..."} out of a failed response, falling back
// to the trimmed body text.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	text := strings.TrimSpace(string(data))
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}
