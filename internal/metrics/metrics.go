package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cellsync_api_requests_total",
			Help: "Total number of requests sent to the backend API.",
		},
		[]string{"code", "method", "route"},
	)
	apiRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cellsync_api_request_duration_seconds",
			Help:    "Duration of backend API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cellsync_api_requests_in_flight",
			Help: "Current number of backend API requests waiting for an answer.",
		},
	)
	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cellsync_checkout_total",
			Help: "Checkout attempts by outcome and payment method.",
		},
		[]string{"outcome", "method"},
	)
	salesAmountCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cellsync_sales_amount_cents_total",
			Help: "Sum of confirmed sale totals in minor currency units.",
		},
		[]string{"method"},
	)
)

const (
	OutcomeConfirmed           = "confirmed"
	OutcomeEmptyCart           = "empty_cart"
	OutcomeInsufficientPayment = "insufficient_payment"
	OutcomeCancelled           = "cancelled"
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

type routeKey struct{}

// WithRoute tags ctx with the route template ("/produtos/{id}") used as the metric
// label, so ids do not blow up label cardinality.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

func routeFromRequest(r *http.Request) string {
	if route, ok := r.Context().Value(routeKey{}).(string); ok && route != "" {
		return route
	}

	return "unknown"
}

// Transport instruments every outbound request sent through next.
func Transport(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {

		start := time.Now()
		apiRequestsInFlight.Inc()

		route := routeFromRequest(r)
		code := "error"

		defer func() {
			apiRequestsTotal.WithLabelValues(code, r.Method, route).Inc()
			apiRequestsDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			apiRequestsInFlight.Dec()
		}()

		resp, err := next.RoundTrip(r)
		if err == nil {
			code = strconv.Itoa(resp.StatusCode)
		}

		return resp, err
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func RecordCheckout(outcome, method string) {
	checkoutsTotal.WithLabelValues(outcome, method).Inc()
}

func RecordSale(method string, totalCents int64) {
	salesAmountCents.WithLabelValues(method).Add(float64(totalCents))
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
