package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the prometheus instruments for the orderbook service.
type OrderMetrics struct {
	OrdersSubmittedTotal    prometheus.CounterVec
	OrdersCancelledTotal    prometheus.Counter
	DuplicateOrdersTotal    prometheus.Counter
	ValidationFailuresTotal prometheus.Counter
	StatusTransitionsTotal  prometheus.CounterVec
	OrderQueryDuration      prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_submitted_total",
				Help: "Total number of submitted limit orders",
			},
			[]string{"network_id"},
		),

		OrdersCancelledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Total number of cancelled limit orders",
			},
		),

		DuplicateOrdersTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "duplicate_orders_total",
				Help: "Total number of submissions rejected for an already known order hash",
			},
		),

		ValidationFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "order_validation_failures_total",
				Help: "Total number of submissions rejected by payload validation",
			},
		),

		StatusTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_transitions_total",
				Help: "Status writes applied on behalf of external collaborators",
			},
			[]string{"status"},
		),

		OrderQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_query_duration_seconds",
				Help:    "Duration of orderbook query operations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"query"},
		),
	}
}

func (m *OrderMetrics) RecordOrderSubmitted(networkID string) {
	m.OrdersSubmittedTotal.WithLabelValues(networkID).Inc()
}

func (m *OrderMetrics) RecordOrderCancelled() {
	m.OrdersCancelledTotal.Inc()
}

func (m *OrderMetrics) RecordDuplicateOrder() {
	m.DuplicateOrdersTotal.Inc()
}

func (m *OrderMetrics) RecordValidationFailure() {
	m.ValidationFailuresTotal.Inc()
}

func (m *OrderMetrics) RecordStatusTransition(status string) {
	m.StatusTransitionsTotal.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) RecordQueryDuration(query string, seconds float64) {
	m.OrderQueryDuration.WithLabelValues(query).Observe(seconds)
}
