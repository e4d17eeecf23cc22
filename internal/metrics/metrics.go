package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generation
	PasswordsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_passwords_generated_total",
			Help: "Passwords generated by requested length",
		},
		[]string{"length"},
	)
	Rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_rejections_total",
			Help: "Rejected generation requests by reason",
		},
		[]string{"reason"}, // too_short|too_long|no_class_selected
	)
	ClassUsage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_class_selected_total",
			Help: "Accepted requests that enabled each character class",
		},
		[]string{"class"},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_http_requests_total",
			Help: "HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)
	HTTPDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "passgen_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "passgen_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(
		PasswordsGenerated,
		Rejections,
		ClassUsage,
		HTTPRequests,
		HTTPDurationSeconds,
		RateLimited,
	)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Generation
func IncGenerated(length int) {
	PasswordsGenerated.WithLabelValues(strconv.Itoa(length)).Inc()
}

func IncRejection(reason string) {
	Rejections.WithLabelValues(reason).Inc()
}

func IncClass(class string) {
	ClassUsage.WithLabelValues(class).Inc()
}

// HTTP
func ObserveRequest(method string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDurationSeconds.WithLabelValues(method).Observe(d.Seconds())
}

func IncRateLimited() {
	RateLimited.Inc()
}
