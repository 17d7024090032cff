package services

import "github.com/DanielPopoola/checkout-payment-gateway/internal/domain"

// ProcessPaymentCommand carries an inbound payment as the transport decoded
// it. Nothing about it has been checked yet.
type ProcessPaymentCommand struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

func (c ProcessPaymentCommand) toRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  c.CardNumber,
		ExpiryMonth: c.ExpiryMonth,
		ExpiryYear:  c.ExpiryYear,
		Currency:    c.Currency,
		Amount:      c.Amount,
		CVV:         c.CVV,
	}
}
