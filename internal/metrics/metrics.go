// Package metrics provides Prometheus metrics collection for the catalog service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// GoldPriceFetchTotal tracks gold price fetch attempts by source and outcome.
	GoldPriceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gold_price_fetch_total",
			Help: "Total number of gold price fetch attempts",
		},
		[]string{"source", "outcome"},
	)

	// GoldPriceFetchDuration tracks outbound gold price fetch duration.
	GoldPriceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gold_price_fetch_duration_seconds",
			Help:    "Gold price fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"source"},
	)

	// CatalogRequestsTotal tracks catalog listings served.
	CatalogRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog listings served",
		},
	)
)

// RecordGoldPriceFetch records one gold price fetch attempt.
// The fallback is recorded with a zero duration since no network I/O happens.
func RecordGoldPriceFetch(source, outcome string, duration time.Duration) {
	GoldPriceFetchTotal.WithLabelValues(source, outcome).Inc()
	if duration > 0 {
		GoldPriceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// RecordCatalogRequest records one served catalog listing.
func RecordCatalogRequest() {
	CatalogRequestsTotal.Inc()
}

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}
