package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DurationBuckets are the histogram bounds for request latency in seconds.
var DurationBuckets = []float64{0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5}

// Metrics owns the process registry and every instrument the service
// records. Business code never touches the registry directly; it goes
// through the increment/observe methods below, which never fail the caller.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ordersCreated   *prometheus.CounterVec
}

// New builds a dedicated registry with Go and process collectors plus the
// service instruments. Construct once at startup.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests.",
	}, []string{"service", "method", "route", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: DurationBuckets,
	}, []string{"service", "method", "route"})

	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created.",
	}, []string{"tenant_id"})

	registry.MustRegister(requestsTotal, requestDuration, ordersCreated)

	return &Metrics{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		ordersCreated:   ordersCreated,
	}
}

// IncRequest counts one completed request with the status actually sent.
func (m *Metrics) IncRequest(service, method, route string, status int) {
	m.requestsTotal.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
}

// ObserveDuration records one request's wall-clock latency in seconds.
func (m *Metrics) ObserveDuration(service, method, route string, seconds float64) {
	m.requestDuration.WithLabelValues(service, method, route).Observe(seconds)
}

// IncOrderCreated counts one durably persisted order for a tenant.
func (m *Metrics) IncOrderCreated(tenantID string) {
	m.ordersCreated.WithLabelValues(tenantID).Inc()
}

// Handler renders the registry in Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
