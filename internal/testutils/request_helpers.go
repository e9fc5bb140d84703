package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/api/middleware"
)

// CreateTestRequest builds a status server request carrying a silent request logger.
func CreateTestRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}
