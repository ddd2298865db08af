package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "restaurant_bot",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight API requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_bot",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of API requests by route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restaurant_bot",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latencies in seconds.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
	}, []string{"method", "route"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restaurant_bot",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "API response sizes in bytes.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 6),
	}, []string{"route"})
)

// служебные маршруты не попадают в метрики
func skipped(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/swagger/")
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skipped(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(route).Observe(float64(rw.bytes))
	})
}
