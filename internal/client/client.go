// Package client talks to the CellSync backend REST API. Every call carries the
// session's bearer token, and a 401 answer ends the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/metrics"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/session"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTimeout  = 10 * time.Second
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 4 << 20
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Transport is the innermost round tripper, http.DefaultTransport when nil.
	Transport http.RoundTripper
}

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	store     session.Store
	validate  *validator.Validate
	userAgent string

	Auth          *AuthAPI
	Dashboard     *DashboardAPI
	Products      *ProductsAPI
	Sales         *SalesAPI
	ServiceOrders *ServiceOrdersAPI
	Customers     *CustomersAPI
	Finance       *FinanceAPI
	Inventory     *InventoryAPI
}

func New(opts Options, store session.Store) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("client: base URL is empty")
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL %q: %w", opts.BaseURL, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("client: base URL %q must be http or https", opts.BaseURL)
	}

	if store == nil {
		return nil, errors.New("client: session store is nil")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	inner := opts.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}

	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(metrics.Transport(&loggingTransport{next: inner})),
		},
		store:     store,
		validate:  validator.New(),
		userAgent: opts.UserAgent,
	}

	c.Auth = &AuthAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}
	c.Products = &ProductsAPI{c: c}
	c.Sales = &SalesAPI{c: c}
	c.ServiceOrders = &ServiceOrdersAPI{c: c}
	c.Customers = &CustomersAPI{c: c}
	c.Finance = &FinanceAPI{c: c}
	c.Inventory = &InventoryAPI{c: c}

	return c, nil
}

// Ping checks that the backend answers at all. No credentials are sent, and any
// status below 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(metrics.WithRoute(ctx, "/"), http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

type request struct {
	method string
	route  string // path template, used as metric label
	path   string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	if r.body != nil {
		if err := utils.ValidateStruct(c.validate, r.body); err != nil {
			return err
		}
	}

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return appErrors.InternalError("Failed to build request").WithError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.store.Clear(ctx); err != nil {
			slog.Error("Failed to clear session after 401", slog.String("error", err.Error()))
		}

		return appErrors.UnauthorizedError("Session expired, please log in again").
			WithDetail(errorMessage(body, ""))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := decodeData(body, out); err != nil {
		return err
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var payload io.Reader

	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(metrics.WithRoute(ctx, r.route), r.method, u.String(), payload)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	token, err := c.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func transportError(err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return appErrors.TimeoutError("The server took too long to answer").WithError(err)
	}

	return appErrors.NetworkError("Could not reach the server").WithError(err)
}

func pathID(id int64) string {
	return strconv.FormatInt(id, 10)
}
