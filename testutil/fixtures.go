package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Assistant payloads covering the directive grammar
const (
	PlainReply = "Hello! How can I help?"

	ImageReply = "Here is your chart.\nIMAGE_GENERATED: https://cdn.example.com/chart.png\nLet me know if you want changes."

	CodeReply = "Try this:\n\n```python\nprint('hi')\n```\n\nIt prints a greeting."

	ImageAndCodeReply = "IMAGE_GENERATED: /static/plot.png\nGenerated with:\n```python\nimport matplotlib\n```"
)

// Request is one call recorded by a Backend
type Request struct {
	Path string
	Body map[string]string
}

// Backend is a fake chat server. Handlers for /chat and /run_code return
// the configured JSON bodies and status codes.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request

	ChatStatus int
	ChatBody   string
	RunStatus  int
	RunBody    string
}

// NewBackend starts a Backend answering reply to every chat message and
// output to every code run. It is closed when the test ends.
func NewBackend(t *testing.T, reply, output string) *Backend {
	t.Helper()
	b := &Backend{
		ChatStatus: http.StatusOK,
		ChatBody:   string(mustJSON(map[string]string{"response": reply})),
		RunStatus:  http.StatusOK,
		RunBody:    string(mustJSON(map[string]string{"output": output})),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		b.mu.Lock()
		status, body := b.ChatStatus, b.ChatBody
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
	mux.HandleFunc("/run_code", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		b.mu.Lock()
		status, body := b.RunStatus, b.RunBody
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

// SetChat changes the /chat answer
func (b *Backend) SetChat(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ChatStatus, b.ChatBody = status, body
}

// SetRun changes the /run_code answer
func (b *Backend) SetRun(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.RunStatus, b.RunBody = status, body
}

// Requests returns the calls received so far
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) record(r *http.Request) {
	body := make(map[string]string)
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, Request{Path: r.URL.Path, Body: body})
}

func mustJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
