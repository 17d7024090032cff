package rest

import (
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/google/uuid"
)

// PaymentRequest is the inbound body of POST /payment. Expiry fields are
// 32-bit so an out-of-range number fails decoding instead of reaching the bank.
type PaymentRequest struct {
	CardNumber  string `json:"card_number" example:"2222405343248877"`
	ExpiryMonth int32  `json:"expiry_month" example:"4"`
	ExpiryYear  int32  `json:"expiry_year" example:"2027"`
	Currency    string `json:"currency" example:"GBP"`
	Amount      int64  `json:"amount" example:"100"`
	CVV         string `json:"cvv" example:"123"`
}

func (r PaymentRequest) ToCommand() services.ProcessPaymentCommand {
	return services.ProcessPaymentCommand{
		CardNumber:  r.CardNumber,
		ExpiryMonth: int(r.ExpiryMonth),
		ExpiryYear:  int(r.ExpiryYear),
		Currency:    r.Currency,
		Amount:      r.Amount,
		CVV:         r.CVV,
	}
}

// PaymentResponse is the payment record as callers see it. Only the last
// four digits of the card ever leave the gateway.
type PaymentResponse struct {
	ID                 uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Status             string    `json:"status" enums:"Authorized,Declined,Rejected"`
	CardNumberLastFour *int      `json:"cardNumberLastFour" example:"8877"`
	ExpiryMonth        int       `json:"expiryMonth" example:"4"`
	ExpiryYear         int       `json:"expiryYear" example:"2027"`
	Currency           string    `json:"currency" example:"GBP"`
	Amount             int64     `json:"amount" example:"100"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
