// Package metrics holds the Prometheus collectors for voice generation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voiceover"

// Request outcomes reported by the generate-voice endpoint.
const (
	OutcomeSuccess             = "success"
	OutcomeValidationError     = "validation_error"
	OutcomeProviderUnavailable = "provider_unavailable"
	OutcomeUnexpectedError     = "unexpected_error"
)

var (
	// requestsTotal counts generate-voice requests by outcome.
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of generate-voice requests by outcome",
		},
		[]string{"outcome"},
	)

	// providerRequestDuration is a histogram of outbound provider call duration.
	providerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of text-to-speech provider calls in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "status"}, // status: HTTP code or "error"
	)

	// audioBytes is a histogram of returned audio sizes.
	audioBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "audio_bytes",
			Help:      "Size of synthesized audio returned to clients",
			Buckets:   prometheus.ExponentialBuckets(4096, 4, 8),
		},
	)

	allMetrics = []prometheus.Collector{requestsTotal, providerRequestDuration, audioBytes}
)

// NewRegistry returns a registry holding the voiceover collectors plus Go
// runtime and process metrics.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	for _, c := range allMetrics {
		reg.MustRegister(c)
	}
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// RecordRequest counts one endpoint invocation.
func RecordRequest(outcome string) {
	requestsTotal.WithLabelValues(outcome).Inc()
}

// RecordProviderCall observes one outbound provider call. statusCode 0 means
// the call failed before a response arrived.
func RecordProviderCall(provider string, statusCode int, d time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	providerRequestDuration.WithLabelValues(provider, status).Observe(d.Seconds())
}

// RecordAudioBytes observes the size of a returned clip.
func RecordAudioBytes(n int) {
	audioBytes.Observe(float64(n))
}
