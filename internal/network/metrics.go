package network

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-service request counts and latencies. A nil *Metrics
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the request collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "passvault_api_requests_total",
			Help: "API requests by service and response status.",
		}, []string{"service", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "passvault_api_request_duration_seconds",
			Help:    "API request latency by service.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records one request. status 0 means the request never got a
// response.
func (m *Metrics) observe(service string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "network_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(service, label).Inc()
	m.duration.WithLabelValues(service).Observe(elapsed.Seconds())
}
