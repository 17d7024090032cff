package testhelpers

import (
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// Card numbers used across tests. The mock bank in the reference
// environment authorizes cards ending in an odd digit.
const (
	AuthorizedCard = "2222405343248877"
	DeclinedCard   = "2222405343248112"
)

// ValidPaymentRequest returns a request that passes validation for years to
// come.
func ValidPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  AuthorizedCard,
		ExpiryMonth: 4,
		ExpiryYear:  time.Now().Year() + 2,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

// NewStoredPayment builds a record of the kind the processor persists.
func NewStoredPayment(status domain.PaymentStatus) *domain.Payment {
	return domain.NewPayment(ValidPaymentRequest(), status)
}
