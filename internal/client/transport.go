package client

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport writes one log line per backend call, keyed by the request id
// set in newRequest.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	requestLogger := slog.Default().With(
		slog.String("correlation_id", r.Header.Get(RequestIDHeader)),
		slog.String("http_method", r.Method),
		slog.String("http_path", r.URL.Path),
	)

	resp, err := t.next.RoundTrip(r)
	if err != nil {
		requestLogger.Error("Backend request failed", slog.String("error", err.Error()), slog.Duration("duration", time.Since(start)))
		return nil, err
	}

	requestLogger.Info("Backend request completed", slog.Int("http_status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

	return resp, nil
}
