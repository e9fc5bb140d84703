package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	service "github.com/aaravmahajanofficial/cellsync-pos/internal/services"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/session"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils/response"
)

type StatusResponse struct {
	Store         string               `json:"store"`
	Authenticated bool                 `json:"authenticated"`
	User          string               `json:"user,omitempty"`
	CheckoutState models.CheckoutState `json:"checkout_state"`
	PaymentMethod models.PaymentMethod `json:"payment_method,omitempty"`
	CartLines     int                  `json:"cart_lines"`
	CartTotal     models.Money         `json:"cart_total"`
}

type CartResponse struct {
	Lines []models.CartLine `json:"lines"`
	Total models.Money      `json:"total"`
}

// StatusHandler exposes a read-only view of the running terminal.
type StatusHandler struct {
	store    string
	cart     service.CartService
	checkout service.CheckoutService
	sessions *session.Manager
}

func NewStatusHandler(store string, cart service.CartService, checkout service.CheckoutService, sessions *session.Manager) *StatusHandler {
	return &StatusHandler{
		store:    store,
		cart:     cart,
		checkout: checkout,
		sessions: sessions,
	}
}

func (h *StatusHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		status := StatusResponse{
			Store:         h.store,
			CheckoutState: h.checkout.State(),
			CartLines:     h.cart.Len(),
			CartTotal:     h.cart.Total(),
		}

		if status.CheckoutState == models.CheckoutAwaitingPayment {
			status.PaymentMethod = h.checkout.Method()
		}

		if h.sessions != nil {
			authenticated, err := h.sessions.Authenticated(r.Context())
			if err != nil {
				logger.Error("Failed to read session", slog.String("error", err.Error()))
				response.Error(w, err)

				return
			}

			status.Authenticated = authenticated

			if authenticated {
				status.User, _ = h.sessions.UserName(r.Context())
			}
		}

		response.Success(w, http.StatusOK, status)
	}
}

func (h *StatusHandler) Cart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines := h.cart.Lines()
		if lines == nil {
			lines = []models.CartLine{}
		}

		response.Success(w, http.StatusOK, CartResponse{Lines: lines, Total: h.cart.Total()})
	}
}
