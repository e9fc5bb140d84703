package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/metrics"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/google/uuid"
)

const DefaultRecordTimeout = 10 * time.Second

// SaleRecorder forwards a confirmed receipt to the sales backend.
type SaleRecorder interface {
	RecordSale(ctx context.Context, receipt *models.Receipt) error
}

type CheckoutService interface {
	State() models.CheckoutState
	Method() models.PaymentMethod
	Tendered() models.Money
	Begin() error
	SelectMethod(method models.PaymentMethod) error
	SetTendered(input string) error
	PendingChange() models.Money
	Cancel()
	Confirm(ctx context.Context) (*models.Receipt, error)
	// Wait blocks until every forwarded sale has finished.
	Wait()
}

type CheckoutOption func(*checkoutService)

func WithRecordTimeout(d time.Duration) CheckoutOption {
	return func(s *checkoutService) {
		if d > 0 {
			s.recordTimeout = d
		}
	}
}

func WithClock(now func() time.Time) CheckoutOption {
	return func(s *checkoutService) {
		s.now = now
	}
}

type checkoutService struct {
	mu       sync.Mutex
	cart     CartService
	state    models.CheckoutState
	method   models.PaymentMethod
	tendered models.Money

	recorder      SaleRecorder
	recordTimeout time.Duration
	pending       sync.WaitGroup
	now           func() time.Time
}

// NewCheckoutService drives payment for cart. recorder may be nil, in which case
// confirmed sales stay local.
func NewCheckoutService(cart CartService, recorder SaleRecorder, opts ...CheckoutOption) CheckoutService {
	s := &checkoutService{
		cart:          cart,
		state:         models.CheckoutIdle,
		method:        models.PaymentCash,
		recorder:      recorder,
		recordTimeout: DefaultRecordTimeout,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *checkoutService) State() models.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *checkoutService) Method() models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.method
}

func (s *checkoutService) Tendered() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tendered
}

// Begin opens payment for the current cart. Calling it again while payment is
// open starts over with cash and nothing tendered.
func (s *checkoutService) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		metrics.RecordCheckout(metrics.OutcomeEmptyCart, string(s.method))
		return errors.EmptyCartError()
	}

	s.state = models.CheckoutAwaitingPayment
	s.method = models.PaymentCash
	s.tendered = 0

	return nil
}

func (s *checkoutService) SelectMethod(method models.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.CheckoutAwaitingPayment {
		return errors.InvalidStateError("No checkout in progress")
	}

	if !method.IsValid() {
		return errors.ValidationError(fmt.Sprintf("Unknown payment method %q", method))
	}

	s.method = method

	return nil
}

// SetTendered takes the raw text of the cash field. Anything that does not parse
// as an amount is zero.
func (s *checkoutService) SetTendered(input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.CheckoutAwaitingPayment {
		return errors.InvalidStateError("No checkout in progress")
	}

	s.tendered = models.ParseTendered(input)

	return nil
}

// PendingChange is tendered minus total while paying cash, negative while short.
func (s *checkoutService) PendingChange() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.CheckoutAwaitingPayment || !s.method.CarriesChange() {
		return 0
	}

	return s.tendered - s.cart.Total()
}

func (s *checkoutService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.CheckoutAwaitingPayment {
		metrics.RecordCheckout(metrics.OutcomeCancelled, string(s.method))
	}

	s.state = models.CheckoutIdle
	s.method = models.PaymentCash
	s.tendered = 0
}

func (s *checkoutService) Confirm(ctx context.Context) (*models.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.CheckoutAwaitingPayment {
		return nil, errors.InvalidStateError("No checkout in progress")
	}

	receipt := &models.Receipt{
		ID:       uuid.New(),
		Method:   s.method,
		IssuedAt: s.now(),
	}

	_, err := s.cart.Settle(func(lines []models.CartLine) error {
		if len(lines) == 0 {
			return errors.EmptyCartError()
		}

		total := calculateTotal(lines)

		receipt.Lines = lines
		receipt.Total = total
		receipt.Tendered = total

		if s.method.CarriesChange() {
			if s.tendered < total {
				return errors.InsufficientPaymentError(
					fmt.Sprintf("Tendered %s is less than the total %s", s.tendered, total))
			}

			receipt.Tendered = s.tendered
			receipt.Change = s.tendered - total
		}

		return nil
	})
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeEmptyCart) {
			// cart was emptied while payment was open
			s.state = models.CheckoutIdle
			metrics.RecordCheckout(metrics.OutcomeEmptyCart, string(s.method))
		} else {
			metrics.RecordCheckout(metrics.OutcomeInsufficientPayment, string(s.method))
		}

		return nil, err
	}

	s.state = models.CheckoutIdle
	s.method = models.PaymentCash
	s.tendered = 0

	metrics.RecordCheckout(metrics.OutcomeConfirmed, string(receipt.Method))
	metrics.RecordSale(string(receipt.Method), int64(receipt.Total))

	slog.Info("Sale confirmed",
		slog.String("receipt_id", receipt.ID.String()),
		slog.String("total", receipt.Total.String()),
		slog.String("method", string(receipt.Method)),
		slog.String("change", receipt.Change.String()))

	s.forward(ctx, receipt)

	return receipt, nil
}

// forward hands the receipt to the recorder without waiting for it. The copy
// handed over is not shared with the caller.
func (s *checkoutService) forward(ctx context.Context, receipt *models.Receipt) {
	if s.recorder == nil {
		return
	}

	sent := *receipt
	sent.Lines = append([]models.CartLine(nil), receipt.Lines...)

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.recordTimeout)
		defer cancel()

		if err := s.recorder.RecordSale(recordCtx, &sent); err != nil {
			slog.Error("Failed to record sale",
				slog.String("receipt_id", sent.ID.String()),
				slog.String("error", err.Error()))

			return
		}

		slog.Debug("Sale recorded", slog.String("receipt_id", sent.ID.String()))
	}()
}

func (s *checkoutService) Wait() {
	s.pending.Wait()
}
