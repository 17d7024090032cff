package postgres

import (
	"time"
)

// PaymentModel mirrors a row of the payments table. Only the sanitized
// record fields are persisted.
type PaymentModel struct {
	ID                 string
	Status             string
	CardNumberLastFour *int32
	ExpiryMonth        int32
	ExpiryYear         int32
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}
