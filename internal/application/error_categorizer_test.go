package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", domain.NewPaymentNotFoundError("x"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", domain.NewPaymentNotFoundError("x")), http.StatusNotFound},
		{"invalid payment", domain.NewInvalidPaymentError(errors.New("bad")), http.StatusUnprocessableEntity},
		{"invalid input", application.NewInvalidInputError("bad body", nil), http.StatusBadRequest},
		{"too many requests", application.NewTooManyRequestsError(), http.StatusTooManyRequests},
		{"deadline", context.DeadlineExceeded, http.StatusRequestTimeout},
		{"handler timeout", application.NewTimeoutError(), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.ToHTTPStatus(tt.err))
		})
	}
}

func TestToErrorCode(t *testing.T) {
	assert.Equal(t, domain.ErrCodePaymentNotFound, application.ToErrorCode(domain.NewPaymentNotFoundError("x")))
	assert.Equal(t, application.ErrCodeInvalidInput, application.ToErrorCode(application.NewInvalidInputError("bad", nil)))
	assert.Equal(t, application.ErrCodeTimeout, application.ToErrorCode(context.DeadlineExceeded))
	assert.Equal(t, application.ErrCodeInternal, application.ToErrorCode(errors.New("boom")))
}

func TestToErrorMessage_HidesInternalCause(t *testing.T) {
	err := application.NewInternalError(errors.New("connection reset by peer"))

	assert.Equal(t, "An internal error occurred", application.ToErrorMessage(err))
	assert.Equal(t, "An internal error occurred", application.ToErrorMessage(errors.New("secret")))
	assert.Equal(t, "payment with ID x not found", application.ToErrorMessage(domain.NewPaymentNotFoundError("x")))
}
