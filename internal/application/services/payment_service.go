package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// PaymentService runs the processing pipeline: validate, call the bank,
// derive a status, store. Rejected payments are returned but never stored.
type PaymentService struct {
	validator application.PaymentValidator
	bank      application.BankConnector
	store     application.PaymentStore
	observer  application.PaymentObserver
	logger    *slog.Logger
}

func NewPaymentService(
	validator application.PaymentValidator,
	bank application.BankConnector,
	store application.PaymentStore,
	observer application.PaymentObserver,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		validator: validator,
		bank:      bank,
		store:     store,
		observer:  observer,
		logger:    logger,
	}
}

// ProcessPayment always returns a record. The error is non-nil only when a
// bank decision was obtained but the store refused the record.
func (s *PaymentService) ProcessPayment(ctx context.Context, cmd ProcessPaymentCommand) (*domain.Payment, error) {
	s.logger.InfoContext(ctx, "Processing payment request")

	req := cmd.toRequest()

	if errs := s.validator.Validate(req); len(errs) > 0 {
		s.logger.WarnContext(ctx, "Payment request rejected due to validation errors", "errors", errs)
		return s.reject(req, domain.RejectValidation), nil
	}

	// a started payment runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	result, ok := s.bank.ProcessPayment(ctx, req.ToBankRequest())
	if !ok {
		s.logger.ErrorContext(ctx, "Bank was unavailable for payment processing")
		return s.reject(req, domain.RejectBankUnavailable), nil
	}

	status := domain.StatusFromBank(*result)
	payment := domain.NewPayment(req, status)

	if err := s.store.Add(ctx, payment); err != nil {
		s.logger.ErrorContext(ctx, "failed to store payment",
			"payment_id", payment.ID,
			"status", status,
			"error", err,
		)
		return payment, application.NewInternalError(err)
	}

	s.observe(status, domain.RejectNone)
	s.logger.InfoContext(ctx, "Payment processed",
		"payment_id", payment.ID,
		"status", status,
	)

	return payment, nil
}

func (s *PaymentService) reject(req domain.PaymentRequest, reason domain.RejectReason) *domain.Payment {
	s.observe(domain.StatusRejected, reason)
	return domain.NewRejectedPayment(req, reason)
}

func (s *PaymentService) observe(status domain.PaymentStatus, reason domain.RejectReason) {
	if s.observer != nil {
		s.observer.ObservePayment(status, reason)
	}
}
