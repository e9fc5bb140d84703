package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine holds the name and price captured when the item was first added.
type CartLine struct {
	ItemID    int64  `json:"produtoId"`
	Name      string `json:"nome"`
	UnitPrice Money  `json:"precoUnitario"`
	Quantity  int    `json:"quantidade"`
}

func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

type CheckoutState string

const (
	CheckoutIdle            CheckoutState = "idle"
	CheckoutAwaitingPayment CheckoutState = "awaiting_payment"
)

type Receipt struct {
	ID       uuid.UUID     `json:"id"`
	Lines    []CartLine    `json:"lines"`
	Total    Money         `json:"total"`
	Method   PaymentMethod `json:"method"`
	Tendered Money         `json:"tendered"`
	Change   Money         `json:"change"`
	IssuedAt time.Time     `json:"issued_at"`
}
