package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "companion_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

// Business metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_cases_opened_total",
			Help: "Total number of successfully opened cases",
		},
		[]string{"case_id", "payment_method"},
	)

	CaseOpenFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_case_open_failures_total",
			Help: "Case opens rejected before delivering a reward",
		},
		[]string{"reason"},
	)

	ItemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "companion_items_sold_total",
			Help: "Inventory items resold through the site",
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "companion_login_failures_total",
			Help: "Failed login attempts",
		},
	)
)

// RecordCaseOpened increments the case-open success counter.
func RecordCaseOpened(caseID int, method string) {
	CasesOpened.WithLabelValues(strconv.Itoa(caseID), method).Inc()
}

// RecordCaseOpenFailure increments the failure counter for a reason tag.
func RecordCaseOpenFailure(reason string) {
	CaseOpenFailures.WithLabelValues(reason).Inc()
}

// RecordItemSold increments the resale counter.
func RecordItemSold() {
	ItemsSold.Inc()
}

// RecordLoginFailure increments the failed-login counter.
func RecordLoginFailure() {
	LoginFailures.Inc()
}
