package restclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WriteMetrics writes the request metrics of every Client, together with the
// rest of the default registry, to path in the Prometheus text format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

// The client label is the first tag of the issuing Client.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghgists",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Outgoing HTTP requests by status code (\"error\" for transport failures).",
		},
		[]string{"client", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ghgists",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Outgoing HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"client", "method"},
	)
)
