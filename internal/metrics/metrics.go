package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nepersonaj"

// Recorder reports runtime metrics using Prometheus primitives.
type Recorder struct {
	registry *prometheus.Registry

	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	contactMessages    *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewRecorder creates a recorder backed by its own registry (DI constructor).
func NewRecorder() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation calls by kind, provider and status",
		}, []string{"kind", "provider", "status"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Provider round trip latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 0.25s..64s
		}, []string{"kind", "provider"}),
		contactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.generations,
		r.generationDuration,
		r.contactMessages,
		r.httpRequests,
		r.httpDuration,
	} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return r, nil
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveGeneration records one provider call. kind is "text" or "image".
func (r *Recorder) ObserveGeneration(kind, provider, status string, duration time.Duration) {
	r.generations.WithLabelValues(kind, provider, status).Inc()
	r.generationDuration.WithLabelValues(kind, provider).Observe(duration.Seconds())
}

// ObserveContact records one contact form outcome.
func (r *Recorder) ObserveContact(status string) {
	r.contactMessages.WithLabelValues(status).Inc()
}

// ObserveHTTP records one served request.
func (r *Recorder) ObserveHTTP(method, route string, code int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, fmt.Sprintf("%d", code)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
