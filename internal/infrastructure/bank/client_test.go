package bank_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankRequest() domain.BankRequest {
	return domain.BankRequest{
		CardNumber: "2222405343248877",
		ExpiryDate: "04/2027",
		Currency:   "GBP",
		Amount:     100,
		CVV:        "123",
	}
}

type clientHarness struct {
	client  *bank.HTTPBankClient
	metrics *metrics.Metrics
	logs    *bytes.Buffer
}

func newClient(t *testing.T, baseURL string, timeout time.Duration) clientHarness {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := metrics.New(prometheus.NewRegistry())

	client := bank.NewBankClient(config.BankConfig{BaseURL: baseURL, Timeout: timeout}, logger, m)
	return clientHarness{client: client, metrics: m, logs: logs}
}

func TestProcessPayment_SendsWireFormat(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotBody   map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authorized":true,"authorization_code":"0bb07405-6d44-4b50-a14f-7ae0beff13ad"}`))
	}))
	defer server.Close()

	h := newClient(t, server.URL+"/", time.Second)

	result, ok := h.client.ProcessPayment(context.Background(), bankRequest())

	require.True(t, ok)
	require.NotNil(t, result)
	assert.True(t, result.Authorized)
	assert.Equal(t, "0bb07405-6d44-4b50-a14f-7ae0beff13ad", result.AuthorizationCode)

	assert.Equal(t, "/payments", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, map[string]any{
		"card_number": "2222405343248877",
		"expiry_date": "04/2027",
		"currency":    "GBP",
		"amount":      float64(100),
		"cvv":         "123",
	}, gotBody)
}

func TestProcessPayment_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authorized":false,"authorization_code":""}`))
	}))
	defer server.Close()

	h := newClient(t, server.URL, time.Second)

	result, ok := h.client.ProcessPayment(context.Background(), bankRequest())

	require.True(t, ok)
	assert.False(t, result.Authorized)
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.BankFailures.WithLabelValues(metrics.CauseServerError)))
}

func TestProcessPayment_NoResult(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		cause   string
	}{
		{
			name: "service unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			cause: metrics.CauseServerError,
		},
		{
			name: "internal server error with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			},
			cause: metrics.CauseServerError,
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			cause: metrics.CauseUnexpectedStatus,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"authorized":`))
			},
			cause: metrics.CauseDecode,
		},
		{
			name:    "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			cause:   metrics.CauseDecode,
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			cause: metrics.CauseDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			h := newClient(t, server.URL, time.Second)

			result, ok := h.client.ProcessPayment(context.Background(), bankRequest())

			assert.False(t, ok)
			assert.Nil(t, result)
			assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.BankFailures.WithLabelValues(tt.cause)))
			assert.Contains(t, h.logs.String(), "cause="+tt.cause)
			assert.Contains(t, h.logs.String(), "level=ERROR")
		})
	}
}

func TestProcessPayment_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	h := newClient(t, url, time.Second)

	result, ok := h.client.ProcessPayment(context.Background(), bankRequest())

	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.BankFailures.WithLabelValues(metrics.CauseTransport)))
}

func TestProcessPayment_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	h := newClient(t, server.URL, 50*time.Millisecond)

	result, ok := h.client.ProcessPayment(context.Background(), bankRequest())

	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.BankFailures.WithLabelValues(metrics.CauseTransport)))
	assert.Equal(t, 1, testutil.CollectAndCount(h.metrics.BankDuration))
}

func TestProcessPayment_DoesNotLogCardData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	h := newClient(t, server.URL, time.Second)
	h.client.ProcessPayment(context.Background(), bankRequest())

	assert.NotContains(t, h.logs.String(), "2222405343248877")
	assert.NotContains(t, h.logs.String(), "cvv")
}
