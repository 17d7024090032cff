package bank

import (
	"errors"
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/metrics"
)

// ErrMalformedResponse covers a 2xx answer whose body is not a decision.
var ErrMalformedResponse = errors.New("malformed bank response")

// BankError is a non-2xx answer from the bank.
type BankError struct {
	StatusCode int
	Body       string
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank returned status %d: %s", e.StatusCode, e.Body)
}

func (e *BankError) IsServerError() bool {
	return e.StatusCode >= 500
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}

// FailureCause names the failure for logs and metrics.
func FailureCause(err error) string {
	if bankErr, ok := IsBankError(err); ok {
		if bankErr.IsServerError() {
			return metrics.CauseServerError
		}
		return metrics.CauseUnexpectedStatus
	}
	if errors.Is(err, ErrMalformedResponse) {
		return metrics.CauseDecode
	}
	return metrics.CauseTransport
}
