package rest

import (
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/go-chi/render"
)

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		Status:      p.Status.String(),
		ExpiryMonth: p.ExpiryMonth,
		ExpiryYear:  p.ExpiryYear,
		Currency:    p.Currency,
		Amount:      p.Amount,
	}

	if p.CardNumberLastFour != nil {
		lastFour := *p.CardNumberLastFour
		resp.CardNumberLastFour = &lastFour
	}

	return resp
}

// RespondJSON writes v with the given status code.
func RespondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
