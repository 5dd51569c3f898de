package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latencyBuckets = []float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30}

// Collector общий интерфейс Metrics и Nop
type Collector interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
	ObserveIntegrationRequest(target, operation, outcome string, d time.Duration)
	WorkflowTransition(flow, phase string)
	WorkflowOpened()
	WorkflowClosed()
}

var (
	_ Collector = (*Metrics)(nil)
	_ Collector = Nop{}
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	integrationRequests        *prometheus.CounterVec
	integrationRequestDuration *prometheus.HistogramVec

	workflowTransitions *prometheus.CounterVec
	workflowsOpen       prometheus.Gauge
}

// New регистрирует все метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request handling latency.",
			ConstLabels: constLabels,
			Buckets:     latencyBuckets,
		}, []string{"method", "route"}),
		integrationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of outgoing requests to backend services.",
			ConstLabels: constLabels,
		}, []string{"target", "operation", "outcome"}),
		integrationRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Latency of outgoing requests to backend services.",
			ConstLabels: constLabels,
			Buckets:     latencyBuckets,
		}, []string{"target", "operation"}),
		workflowTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_workflow_transitions_total",
			Help:        "Reservation workflow phase transitions.",
			ConstLabels: constLabels,
		}, []string{"flow", "phase"}),
		workflowsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "reservation_workflows_open",
			Help:        "Number of open reservation workflow sessions.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.integrationRequests,
		m.integrationRequestDuration,
		m.workflowTransitions,
		m.workflowsOpen,
	)

	return m
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Registry для тестов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveIntegrationRequest(target, operation, outcome string, d time.Duration) {
	m.integrationRequests.WithLabelValues(target, operation, outcome).Inc()
	m.integrationRequestDuration.WithLabelValues(target, operation).Observe(d.Seconds())
}

func (m *Metrics) WorkflowTransition(flow, phase string) {
	m.workflowTransitions.WithLabelValues(flow, phase).Inc()
}

func (m *Metrics) WorkflowOpened() {
	m.workflowsOpen.Inc()
}

func (m *Metrics) WorkflowClosed() {
	m.workflowsOpen.Dec()
}

// Nop реализация для случаев, когда метрики выключены
type Nop struct{}

func (Nop) ObserveHTTPRequest(string, string, int, time.Duration)           {}
func (Nop) ObserveIntegrationRequest(string, string, string, time.Duration) {}
func (Nop) WorkflowTransition(string, string)                               {}
func (Nop) WorkflowOpened()                                                 {}
func (Nop) WorkflowClosed()                                                 {}
