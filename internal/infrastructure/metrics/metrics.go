// Package metrics owns the Prometheus collectors for payment outcomes and
// bank call failures.
package metrics

import (
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Bank failure causes.
const (
	CauseServerError      = "server_error"
	CauseUnexpectedStatus = "unexpected_status"
	CauseTransport        = "transport"
	CauseDecode           = "decode"
)

type Metrics struct {
	Payments     *prometheus.CounterVec
	BankFailures *prometheus.CounterVec
	BankDuration prometheus.Histogram
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_payments_total",
			Help: "Payments processed, by resulting status and rejection reason.",
		}, []string{"status", "reason"}),
		BankFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_bank_failures_total",
			Help: "Bank calls that produced no decision, by cause.",
		}, []string{"cause"}),
		BankDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gateway_bank_request_duration_seconds",
			Help:    "Latency of calls to the acquiring bank.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.Payments, m.BankFailures, m.BankDuration)
	return m
}

func (m *Metrics) ObservePayment(status domain.PaymentStatus, reason domain.RejectReason) {
	if m == nil {
		return
	}
	r := string(reason)
	if r == "" {
		r = "none"
	}
	m.Payments.WithLabelValues(status.String(), r).Inc()
}

func (m *Metrics) ObserveBankFailure(cause string) {
	if m == nil {
		return
	}
	m.BankFailures.WithLabelValues(cause).Inc()
}

func (m *Metrics) ObserveBankDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.BankDuration.Observe(d.Seconds())
}
