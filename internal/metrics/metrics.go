package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fuel",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fuel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	salesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuel",
			Subsystem: "ledger",
			Name:      "sales_logged_total",
			Help:      "Total number of sales appended to the ledger.",
		},
		[]string{"fuel_type"},
	)

	customersAdded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuel",
			Subsystem: "ledger",
			Name:      "customers_added_total",
			Help:      "Customer creation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	rewardPoints = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fuel",
			Subsystem: "ledger",
			Name:      "reward_points_total",
			Help:      "Total loyalty points granted.",
		},
	)

	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fuel",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Database failures by operation.",
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		salesLogged,
		customersAdded,
		rewardPoints,
		storeErrors,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
// Requests are labelled with the chi route pattern once routing is done.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordSale counts an appended sale.
func RecordSale(fuelType string) {
	if fuelType == "" {
		fuelType = "unknown"
	}
	salesLogged.WithLabelValues(fuelType).Inc()
}

// RecordCustomer counts a customer creation attempt.
func RecordCustomer(created bool) {
	outcome := "exists"
	if created {
		outcome = "created"
	}
	customersAdded.WithLabelValues(outcome).Inc()
}

// RecordReward adds granted loyalty points.
func RecordReward(points int64) {
	if points <= 0 {
		return
	}
	rewardPoints.Add(float64(points))
}

// RecordStoreError counts a failed database operation.
func RecordStoreError(op string) {
	storeErrors.WithLabelValues(op).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}
