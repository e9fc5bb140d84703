package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils/response"
)

// RecordedRequest is what the fake backend saw of an incoming call.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          []byte
}

// FakeBackend answers like the CellSync REST backend, with the success/data
// envelope, and records every request it receives.
type FakeBackend struct {
	*httptest.Server

	mux      *http.ServeMux
	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{mux: http.NewServeMux()}

	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		b.mu.Unlock()

		b.mux.ServeHTTP(w, r)
	}))

	t.Cleanup(b.Close)

	return b
}

// Reply registers pattern (e.g. "GET /produtos") to answer status with data in
// the envelope.
func (b *FakeBackend) Reply(pattern string, status int, data any) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, status, data)
	})
}

// Fail registers pattern to answer with err in the envelope.
func (b *FakeBackend) Fail(pattern string, err error) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, err)
	})
}

func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]RecordedRequest(nil), b.requests...)
}
