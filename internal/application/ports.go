package application

//go:generate sh -c "cd ../.. && go run github.com/vektra/mockery/v2@v2.53.3"

import (
	"context"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// BankConnector is the port for the acquiring bank. A false second return
// means no decision could be obtained, whatever the cause.
type BankConnector interface {
	ProcessPayment(ctx context.Context, req domain.BankRequest) (*domain.BankResult, bool)
}

// PaymentStore is the port for persistence. Get returns a not-found
// DomainError when no record exists for the id.
type PaymentStore interface {
	Add(ctx context.Context, payment *domain.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}

// PaymentValidator checks a request and returns every violation it finds.
type PaymentValidator interface {
	Validate(req domain.PaymentRequest) []string
}

// PaymentObserver receives the outcome of every processing attempt.
type PaymentObserver interface {
	ObservePayment(status domain.PaymentStatus, reason domain.RejectReason)
}
