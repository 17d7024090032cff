package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidPayment  = "INVALID_PAYMENT"
)

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
	}
}

// NewInvalidPaymentError wraps a store-level failure to accept a record.
func NewInvalidPaymentError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPayment,
		Message: "payment record is invalid",
		Err:     err,
	}
}

// IsErrorCode reports whether err is a DomainError with the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound is shorthand for IsErrorCode(err, ErrCodePaymentNotFound).
func IsNotFound(err error) bool {
	return IsErrorCode(err, ErrCodePaymentNotFound)
}
