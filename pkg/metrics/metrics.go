package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the wallet pipeline and HTTP collectors.
type Metrics struct {
	BuildsTotal           *prometheus.CounterVec
	SubmitAttemptsTotal   *prometheus.CounterVec
	SubmitRetriesTotal    prometheus.Counter
	SubmitDuration        prometheus.Histogram
	SecurityVerdictsTotal *prometheus.CounterVec
	UnlocksTotal          *prometheus.CounterVec
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// New registers all collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BuildsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_builds_total",
			Help: "Transactions built, by operation and result.",
		}, []string{"operation", "result"}),
		SubmitAttemptsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_submit_attempts_total",
			Help: "Submission attempts, by outcome.",
		}, []string{"outcome"}),
		SubmitRetriesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "wallet_submit_retries_total",
			Help: "Submissions retried after a gateway timeout.",
		}),
		SubmitDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wallet_submit_duration_seconds",
			Help:    "Time from first attempt to a definitive submission result.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 180},
		}),
		SecurityVerdictsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_security_verdicts_total",
			Help: "Security verdicts, by subject and level.",
		}, []string{"subject", "level"}),
		UnlocksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_key_unlocks_total",
			Help: "Key unlock attempts, by result.",
		}, []string{"result"}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distributions.",
			Buckets: []float64{0.1, 0.3, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "path"}),
	}
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		// unmatched routes have an empty template
		if path == "" {
			return
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// The Observe helpers are nil-safe so components can run without metrics.

func (m *Metrics) ObserveBuild(operation, result string) {
	if m == nil {
		return
	}
	m.BuildsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveSubmitAttempt(outcome string) {
	if m == nil {
		return
	}
	m.SubmitAttemptsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSubmitRetry() {
	if m == nil {
		return
	}
	m.SubmitRetriesTotal.Inc()
}

func (m *Metrics) ObserveSubmitDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.SubmitDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveVerdict(subject, level string) {
	if m == nil {
		return
	}
	m.SecurityVerdictsTotal.WithLabelValues(subject, level).Inc()
}

func (m *Metrics) ObserveUnlock(result string) {
	if m == nil {
		return
	}
	m.UnlocksTotal.WithLabelValues(result).Inc()
}
