package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool call outcomes
const (
	ToolStatusOK       = "ok"
	ToolStatusDegraded = "degraded"
)

var (
	// compilationsTotal counts compiled queries by the path that produced them.
	// Labels: method (ai-agent, keyword)
	compilationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "impact_search",
		Name:      "compilations_total",
		Help:      "Total compiled search queries by method",
	}, []string{"method"})

	// interpreterFailuresTotal counts interpreter runs that fell back to keywords.
	interpreterFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "impact_search",
		Name:      "interpreter_failures_total",
		Help:      "Total interpreter failures that triggered the keyword fallback",
	})

	// toolCallsTotal counts interpreter tool invocations.
	// Labels: tool, status (ok, degraded)
	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "impact_search",
		Name:      "tool_calls_total",
		Help:      "Total interpreter tool calls by tool and status",
	}, []string{"tool", "status"})

	// compileSeconds measures end-to-end compile latency.
	// Labels: method
	compileSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "impact_search",
		Name:      "compile_seconds",
		Help:      "End-to-end query compile latency",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"method"})

	// rateLimitedTotal counts requests rejected by the rate limiter.
	// Labels: path
	rateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "impact_search",
		Name:      "rate_limited_total",
		Help:      "Total HTTP requests rejected by the rate limiter",
	}, []string{"path"})
)

// RecordCompilation records one successful compilation and its latency
func RecordCompilation(method string, elapsed time.Duration) {
	compilationsTotal.WithLabelValues(method).Inc()
	compileSeconds.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RecordInterpreterFailure records a fallback caused by an interpreter failure
func RecordInterpreterFailure() {
	interpreterFailuresTotal.Inc()
}

// RecordToolCall records one tool invocation
func RecordToolCall(tool, status string) {
	toolCallsTotal.WithLabelValues(tool, status).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter
func RecordRateLimited(path string) {
	rateLimitedTotal.WithLabelValues(path).Inc()
}
