package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricHTTPRequests        = "libmgmt_http_requests_total"
	metricHTTPRequestDuration = "libmgmt_http_request_duration_seconds"

	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"

	routeUnmatched = "unmatched"
)

type httpMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newHTTPMetrics(registerer prometheus.Registerer) *httpMetrics {
	factory := promauto.With(registerer)

	return &httpMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricHTTPRequests,
			Help: "Total number of HTTP requests by method, route template and status code.",
		}, []string{labelMethod, labelRoute, labelStatus}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricHTTPRequestDuration,
			Help:    "HTTP request latency by method and route template.",
			Buckets: prometheus.DefBuckets,
		}, []string{labelMethod, labelRoute}),
	}
}

// middleware labels requests with the route template, not the raw path, to keep cardinality bounded.
func (m *httpMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := routeUnmatched
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
		m.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}

	r.ResponseWriter.WriteHeader(status)
}
