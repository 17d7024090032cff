package handlers

import (
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/go-chi/render"
)

// ProcessPayment godoc
// @Summary      Process a card payment
// @Description  Validates the payment, asks the acquiring bank for a decision and stores the outcome.
// @Description  Invalid requests are answered with a Rejected record and status 400.
// @Description  A Rejected record with status 200 means the bank could not be reached.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      rest.PaymentRequest   true  "Card payment"
// @Success      200      {object}  rest.PaymentResponse
// @Failure      400      {object}  rest.PaymentResponse  "Rejected by validation"
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /payment [post]
func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req rest.PaymentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError("Request body is not a valid payment", err), h.logger)
		return
	}

	payment, err := h.paymentService.ProcessPayment(r.Context(), req.ToCommand())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	status := http.StatusOK
	if payment.RejectReason == domain.RejectValidation {
		status = http.StatusBadRequest
	}

	rest.RespondJSON(w, r, status, rest.ToPaymentResponse(payment))
}
