package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily_client",
			Name:      "requests_total",
			Help:      "Upstream Daily API calls by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily_client",
			Name:      "request_failures_total",
			Help:      "Upstream Daily API calls that returned an error.",
		},
		[]string{"endpoint"},
	)
)

func observe(endpoint string, err error) {
	requestsTotal.WithLabelValues(endpoint).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(endpoint).Inc()
	}
}
