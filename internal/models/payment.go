package models

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentCash            PaymentMethod = "cash"
	PaymentCard            PaymentMethod = "card"
	PaymentInstantTransfer PaymentMethod = "instant_transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentInstantTransfer:
		return true
	}

	return false
}

// CarriesChange reports whether the method involves handing change back.
func (m PaymentMethod) CarriesChange() bool {
	return m == PaymentCash
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "dinheiro":
		return PaymentCash, nil
	case "card", "cartao", "cartão":
		return PaymentCard, nil
	case "instant_transfer", "transfer", "pix":
		return PaymentInstantTransfer, nil
	}

	return "", fmt.Errorf("unknown payment method %q", s)
}
