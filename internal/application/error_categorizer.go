package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodePaymentNotFound):
		return http.StatusNotFound

	case domain.IsErrorCode(err, domain.ErrCodeInvalidPayment):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}

// ToErrorMessage returns the message safe to show a caller. Internal causes
// stay in the logs.
func ToErrorMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}

	return "An internal error occurred"
}
