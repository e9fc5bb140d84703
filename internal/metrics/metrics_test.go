package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport(t *testing.T) {
	t.Run("Counts status code by route", func(t *testing.T) {
		next := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
		})

		before := testutil.ToFloat64(apiRequestsTotal.WithLabelValues("404", http.MethodGet, "/produtos/{id}"))

		req := httptest.NewRequest(http.MethodGet, "http://backend/produtos/7", nil)
		req = req.WithContext(WithRoute(req.Context(), "/produtos/{id}"))

		resp, err := Transport(next).RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		after := testutil.ToFloat64(apiRequestsTotal.WithLabelValues("404", http.MethodGet, "/produtos/{id}"))
		assert.Equal(t, before+1, after)
		assert.Equal(t, float64(0), testutil.ToFloat64(apiRequestsInFlight))
	})

	t.Run("Transport errors are labelled error", func(t *testing.T) {
		next := roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		})

		before := testutil.ToFloat64(apiRequestsTotal.WithLabelValues("error", http.MethodPost, "unknown"))

		_, err := Transport(next).RoundTrip(httptest.NewRequest(http.MethodPost, "http://backend/vendas", nil))
		require.Error(t, err)

		after := testutil.ToFloat64(apiRequestsTotal.WithLabelValues("error", http.MethodPost, "unknown"))
		assert.Equal(t, before+1, after)
	})
}

func TestRecordCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkoutsTotal.WithLabelValues(OutcomeConfirmed, "cash"))

	RecordCheckout(OutcomeConfirmed, "cash")
	RecordSale("cash", 2500)

	assert.Equal(t, before+1, testutil.ToFloat64(checkoutsTotal.WithLabelValues(OutcomeConfirmed, "cash")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(salesAmountCents.WithLabelValues("cash")), float64(2500))
}

func TestHandler(t *testing.T) {
	RecordCheckout(OutcomeEmptyCart, "cash")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cellsync_checkout_total")
}
