package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func TestNewPayment(t *testing.T) {
	t.Run("copies passthrough fields and last four", func(t *testing.T) {
		payment := domain.NewPayment(validRequest(), domain.StatusAuthorized)

		require.NotNil(t, payment)
		assert.NotEqual(t, uuid.Nil, payment.ID)
		assert.Equal(t, domain.StatusAuthorized, payment.Status)
		require.NotNil(t, payment.CardNumberLastFour)
		assert.Equal(t, 8877, *payment.CardNumberLastFour)
		assert.Equal(t, 4, payment.ExpiryMonth)
		assert.Equal(t, 2027, payment.ExpiryYear)
		assert.Equal(t, "GBP", payment.Currency)
		assert.Equal(t, int64(100), payment.Amount)
		assert.Equal(t, domain.RejectNone, payment.RejectReason)
	})

	t.Run("assigns a fresh identifier every time", func(t *testing.T) {
		a := domain.NewPayment(validRequest(), domain.StatusDeclined)
		b := domain.NewPayment(validRequest(), domain.StatusDeclined)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejected payment carries its reason", func(t *testing.T) {
		payment := domain.NewRejectedPayment(validRequest(), domain.RejectBankUnavailable)

		assert.True(t, payment.IsRejected())
		assert.Equal(t, domain.RejectBankUnavailable, payment.RejectReason)
	})
}

func TestLastFour(t *testing.T) {
	tests := []struct {
		name string
		card string
		want *int
	}{
		{"full card", "2222405343248877", intPtr(8877)},
		{"leading zeros in tail", "4111111111110042", intPtr(42)},
		{"exactly four", "1234", intPtr(1234)},
		{"too short", "123", nil},
		{"empty", "", nil},
		{"non numeric tail", "41111111111abcd", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.LastFour(tt.card))
		})
	}
}

func TestPaymentRequest_ToBankRequest(t *testing.T) {
	req := validRequest()
	req.ExpiryMonth = 4

	bankReq := req.ToBankRequest()

	assert.Equal(t, "2222405343248877", bankReq.CardNumber)
	assert.Equal(t, "04/2027", bankReq.ExpiryDate)
	assert.Equal(t, "GBP", bankReq.Currency)
	assert.Equal(t, int64(100), bankReq.Amount)
	assert.Equal(t, "123", bankReq.CVV)

	req.ExpiryMonth = 11
	assert.Equal(t, "11/2027", req.ExpiryDate())
}

func TestStatusFromBank(t *testing.T) {
	assert.Equal(t, domain.StatusAuthorized, domain.StatusFromBank(domain.BankResult{Authorized: true}))
	assert.Equal(t, domain.StatusDeclined, domain.StatusFromBank(domain.BankResult{Authorized: false}))
}

func TestPayment_Clone(t *testing.T) {
	original := domain.NewPayment(validRequest(), domain.StatusAuthorized)
	clone := original.Clone()

	require.Equal(t, original, clone)

	*clone.CardNumberLastFour = 1
	clone.Amount = 999

	assert.Equal(t, 8877, *original.CardNumberLastFour)
	assert.Equal(t, int64(100), original.Amount)

	var nilPayment *domain.Payment
	assert.Nil(t, nilPayment.Clone())
}

func TestDomainErrors(t *testing.T) {
	err := domain.NewPaymentNotFoundError("abc")

	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(fmt.Errorf("lookup: %w", err)))
	assert.False(t, domain.IsNotFound(errors.New("boom")))
	assert.Contains(t, err.Error(), "abc")

	wrapped := domain.NewInvalidPaymentError(errors.New("db down"))
	assert.True(t, domain.IsErrorCode(wrapped, domain.ErrCodeInvalidPayment))
	assert.Equal(t, "payment record is invalid: db down", wrapped.Error())
}

func intPtr(v int) *int { return &v }
