package handlers

import (
	"log/slog"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
)

// Handlers serves the payment HTTP surface.
type Handlers struct {
	paymentService *services.PaymentService
	queryService   *services.QueryService
	logger         *slog.Logger
}

func NewHandlers(
	paymentService *services.PaymentService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		queryService:   queryService,
		logger:         logger,
	}
}
