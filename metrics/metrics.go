// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const ServiceName = "quicklysurvey"

var (
	SubmissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "submission", "accepted_total"),
		Help: "Number of submissions stored",
	})
	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "submission", "rejected_total"),
		Help: "Number of submissions rejected, by reason",
	}, []string{"reason"})
	AggregateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "aggregate", "duration_seconds"),
		Help:    "Duration of a full dominant-value recomputation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	})
	AggregateHistorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "aggregate", "history_size"),
		Help: "Number of submissions in the last recomputation",
	})
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "http", "request_duration_seconds"),
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
