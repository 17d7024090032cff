package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeRouteNotFound   = "NOT_FOUND"
)

// NewTimeoutError is what a caller sees when the handler deadline passes.
// The status matches the one http.TimeoutHandler writes.
func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewTooManyRequestsError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTooManyRequests,
		Message:    "Too many requests",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func NewRouteNotFoundError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRouteNotFound,
		Message:    "Page not found",
		HTTPStatus: http.StatusNotFound,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
