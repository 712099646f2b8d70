// Package metrics holds the prometheus collectors for the website.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Signup results.
const (
	SignupAccepted    = "accepted"
	SignupInvalid     = "invalid"
	SignupRateLimited = "rate_limited"
	SignupUnavailable = "unavailable"
	SignupFailed      = "failed"
)

var (
	// HTTP metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Page metrics
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_renders_total",
		Help: "Total number of rendered pages",
	}, []string{"page"})

	// Signup metrics
	Signups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_signups_total",
		Help: "Total number of signup submissions by result",
	}, []string{"result"})

	ConfirmationEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_confirmation_emails_total",
		Help: "Total number of confirmation emails attempted",
	}, []string{"success"})
)

// ObserveRequest records one served request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
