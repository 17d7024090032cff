package rest_test

import (
	"encoding/json"
	"testing"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func TestToPaymentResponse_WireNames(t *testing.T) {
	payment := domain.NewPayment(samplePaymentRequest(), domain.StatusAuthorized)

	raw, err := json.Marshal(rest.ToPaymentResponse(payment))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, payment.ID.String(), fields["id"])
	assert.Equal(t, "Authorized", fields["status"])
	assert.EqualValues(t, 8877, fields["cardNumberLastFour"])
	assert.EqualValues(t, 4, fields["expiryMonth"])
	assert.EqualValues(t, 2027, fields["expiryYear"])
	assert.Equal(t, "GBP", fields["currency"])
	assert.EqualValues(t, 100, fields["amount"])
	assert.Len(t, fields, 7)

	assert.NotContains(t, string(raw), "2222405343248877")
}

func TestToPaymentResponse_UnknownLastFourIsNull(t *testing.T) {
	req := samplePaymentRequest()
	req.CardNumber = "12"
	payment := domain.NewRejectedPayment(req, domain.RejectValidation)

	raw, err := json.Marshal(rest.ToPaymentResponse(payment))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"cardNumberLastFour":null`)
	assert.Contains(t, string(raw), `"status":"Rejected"`)
	assert.NotContains(t, string(raw), "reason")
}

func TestPaymentRequest_DecodesSnakeCase(t *testing.T) {
	body := `{"card_number":"2222405343248877","expiry_month":4,"expiry_year":2027,"currency":"GBP","amount":100,"cvv":"123"}`

	var req rest.PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	cmd := req.ToCommand()
	assert.Equal(t, "2222405343248877", cmd.CardNumber)
	assert.Equal(t, 4, cmd.ExpiryMonth)
	assert.Equal(t, 2027, cmd.ExpiryYear)
	assert.Equal(t, "GBP", cmd.Currency)
	assert.Equal(t, int64(100), cmd.Amount)
	assert.Equal(t, "123", cmd.CVV)
}
