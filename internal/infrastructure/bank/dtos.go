package bank

import "github.com/DanielPopoola/checkout-payment-gateway/internal/domain"

// PaymentRequest is the body POSTed to {base_url}/payments.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type PaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

func toWireRequest(req domain.BankRequest) PaymentRequest {
	return PaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}
}

func (r PaymentResponse) toDomain() *domain.BankResult {
	return &domain.BankResult{
		Authorized:        r.Authorized,
		AuthorizationCode: r.AuthorizationCode,
	}
}
