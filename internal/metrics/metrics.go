package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "enrich"

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CMSRequests counts content provider calls; outcome is ok, error or degraded.
	CMSRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cms_requests_total",
			Help:      "Total number of content provider requests",
		},
		[]string{"operation", "outcome"},
	)

	CMSDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cms_request_duration_seconds",
			Help:      "Time spent waiting on the content provider",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ActiveQuizSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quiz_active_sessions",
			Help:      "Current number of in-memory quiz sessions",
		},
	)

	QuizCompletions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_completions_total",
			Help:      "Total number of completed quizzes",
		},
	)

	QuizScorePercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quiz_score_percent",
			Help:      "Distribution of completed quiz scores in percent",
			Buckets:   []float64{20, 40, 60, 70, 80, 90, 100},
		},
	)

	ResultPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_result_persist_failures_total",
			Help:      "Total number of quiz results that could not be stored",
		},
	)
)

// ObserveCMS records one provider call.
func ObserveCMS(operation, outcome string, started time.Time) {
	CMSRequests.WithLabelValues(operation, outcome).Inc()
	CMSDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
