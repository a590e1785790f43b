// Package metrics provides Prometheus metrics for the CloudBox server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudbox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloudbox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	projectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloudbox_projection_duration_seconds",
			Help:    "Time spent filtering, sorting and aggregating the collection",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"view"},
	)

	collectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cloudbox_collection_records",
			Help: "Number of records in the collection by state",
		},
		[]string{"state"},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudbox_mutations_total",
			Help: "Total number of collection mutations",
		},
		[]string{"op"},
	)

	trashPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudbox_trash_purged_total",
			Help: "Records removed by trash auto cleanup",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveProjection records how long a projection of the given view took.
func ObserveProjection(view string, d time.Duration) {
	projectionDuration.WithLabelValues(view).Observe(d.Seconds())
}

// SetCollectionSize updates the record gauges.
func SetCollectionSize(active, trashed int) {
	collectionSize.WithLabelValues("active").Set(float64(active))
	collectionSize.WithLabelValues("trashed").Set(float64(trashed))
}

// RecordMutation counts a mutation of the collection.
func RecordMutation(op string) {
	mutationsTotal.WithLabelValues(op).Inc()
}

// RecordTrashPurge counts records removed by auto cleanup.
func RecordTrashPurge(n int) {
	trashPurgedTotal.Add(float64(n))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
