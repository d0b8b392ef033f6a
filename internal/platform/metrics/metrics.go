// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "debt_tracker"

// Ledger event kinds.
const (
	KindDebt    = "debt"
	KindPayment = "payment"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	LedgerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_events_total",
		Help:      "Debts and payments recorded.",
	}, []string{"kind"})

	LedgerAmountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_amount_total",
		Help:      "Sum of amounts recorded, by kind.",
	}, []string{"kind"})

	ReportsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Reports rendered, by output format and mode.",
	}, []string{"format", "mode"})
)

// RecordLedgerEvent counts one committed debt or payment.
func RecordLedgerEvent(kind string, amount decimal.Decimal) {
	LedgerEventsTotal.WithLabelValues(kind).Inc()
	LedgerAmountTotal.WithLabelValues(kind).Add(amount.InexactFloat64())
}

// RecordReport counts one rendered report.
func RecordReport(format, mode string) {
	ReportsGeneratedTotal.WithLabelValues(format, mode).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
