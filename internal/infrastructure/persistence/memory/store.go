// Package memory is the default PaymentStore. Records live only as long as
// the process.
package memory

import (
	"context"
	"sync"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

type PaymentStore struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments: make(map[uuid.UUID]*domain.Payment),
	}
}

// Add stores a copy of payment, replacing any record with the same id.
func (s *PaymentStore) Add(_ context.Context, payment *domain.Payment) error {
	if payment == nil {
		return domain.NewInvalidPaymentError(nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.ID] = payment.Clone()
	return nil
}

// Get returns a copy of the stored record.
func (s *PaymentStore) Get(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	return payment.Clone(), nil
}

func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
