package metrics_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObservePayment(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObservePayment(domain.StatusAuthorized, domain.RejectNone)
	m.ObservePayment(domain.StatusAuthorized, domain.RejectNone)
	m.ObservePayment(domain.StatusRejected, domain.RejectBankUnavailable)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Payments.WithLabelValues("Authorized", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Payments.WithLabelValues("Rejected", "bank_unavailable")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Payments.WithLabelValues("Declined", "none")))
}

func TestMetrics_ObserveBank(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBankFailure(metrics.CauseTransport)
	m.ObserveBankDuration(150 * time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BankFailures.WithLabelValues(metrics.CauseTransport)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BankDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObservePayment(domain.StatusDeclined, domain.RejectNone)
		m.ObserveBankFailure(metrics.CauseDecode)
		m.ObserveBankDuration(time.Second)
	})
}
