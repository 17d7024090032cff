package services

import (
	"context"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

type QueryService struct {
	store application.PaymentStore
}

func NewQueryService(store application.PaymentStore) *QueryService {
	return &QueryService{
		store: store,
	}
}

// GetPaymentByID is a plain store lookup. A miss surfaces as the domain
// not-found error.
func (s *QueryService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.store.Get(ctx, id)
}
