package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Registrations   *prometheus.CounterVec
	ImageProcessing *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "staffdir_registrations_total",
			Help: "Registration attempts by outcome",
		}, []string{"outcome"}),
		ImageProcessing: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdir_image_processing_seconds",
			Help:    "Time spent resizing and optimizing uploaded photos",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		}, []string{"result"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "staffdir_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdir_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveRegistration increments the registrations counter for outcome
func (m *Metrics) ObserveRegistration(outcome string) {
	m.Registrations.WithLabelValues(outcome).Inc()
}

// ObserveImageProcessing records a processing run duration
func (m *Metrics) ObserveImageProcessing(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ImageProcessing.WithLabelValues(result).Observe(d.Seconds())
}
