package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Errors          *prometheus.CounterVec
	StoreOps        *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec
	SeededRecords   prometheus.Counter
}

// NewMetrics registers the service collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_http_errors_total",
			Help: "Error responses by route, method and error code.",
		}, []string{"route", "method", "code"}),
		StoreOps: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_store_operations_total",
			Help: "Document store calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		StoreDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_store_operation_duration_seconds",
			Help:    "Duration of document store calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		SeededRecords: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employees_seeded_records_total",
			Help: "Sample employees inserted by the seed step.",
		}),
	}
}

// RecordRequest counts a completed request.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError counts an error response.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(route, method, code).Inc()
}

// RecordStoreOp counts a store call and its latency.
func (m *Metrics) RecordStoreOp(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.StoreOps.WithLabelValues(operation, outcome).Inc()
	m.StoreDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSeeded adds n to the seeded records counter.
func (m *Metrics) RecordSeeded(n int) {
	if m == nil {
		return
	}
	m.SeededRecords.Add(float64(n))
}
