// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HealthProbeUp is 1 when the last run of the probe succeeded.
	HealthProbeUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "health_probe_up",
			Help: "Result of the last health probe run (1 up, 0 down)",
		},
		[]string{"probe"},
	)

	HealthProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "health_probe_duration_seconds",
			Help:    "Health probe duration in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"probe"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Lifecycle events handed to the publisher, by type and outcome",
		},
		[]string{"type", "outcome"},
	)
)

// ObserveProbe records one probe run.
func ObserveProbe(probe string, up bool, elapsed time.Duration) {
	v := 0.0
	if up {
		v = 1
	}
	HealthProbeUp.WithLabelValues(probe).Set(v)
	HealthProbeDuration.WithLabelValues(probe).Observe(elapsed.Seconds())
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route, status string, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// ObservePublish counts one event publication attempt.
func ObservePublish(eventType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EventsPublishedTotal.WithLabelValues(eventType, outcome).Inc()
}

// InstrumentPublisher counts every publication made through p.
func InstrumentPublisher(p event.Publisher) event.Publisher {
	return event.PublisherFunc(func(ctx context.Context, ev event.Event) error {
		err := p.Publish(ctx, ev)
		ObservePublish(string(ev.Type), err)
		return err
	})
}
