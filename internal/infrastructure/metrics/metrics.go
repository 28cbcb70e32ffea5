package metrics

import (
	"strconv"
	"sync"
	"time"

	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the gateway
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, route, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	// Transitions counts transition attempts by action and outcome
	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "intervention_transitions_total", Help: "Intervention transition attempts by action and outcome."},
		[]string{"action", "outcome"},
	)
	// TransitionLatency tracks end-to-end transition latency in seconds
	TransitionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "intervention_transition_duration_seconds", Help: "Transition latency in seconds.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15}},
		[]string{"action", "outcome"},
	)
	// PollCycles counts refresh cycles by outcome
	PollCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "intervention_poll_cycles_total", Help: "Refresh cycles by outcome."},
		[]string{"outcome"},
	)
	// PollRecords counts records adopted or skipped by the refresh
	PollRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "intervention_poll_records_total", Help: "Records handled by refresh cycles."},
		[]string{"result"},
	)
	// RemoteRequests counts backing service calls by operation and status class
	RemoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "depannel_api_requests_total", Help: "Backing service requests by operation and status."},
		[]string{"operation", "status"},
	)
)

// RegisterDefault registers collectors to the gateway registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Transitions)
		Registry.MustRegister(TransitionLatency)
		Registry.MustRegister(PollCycles)
		Registry.MustRegister(PollRecords)
		Registry.MustRegister(RemoteRequests)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

// TransitionMetrics records use case observations on the collectors above.
type TransitionMetrics struct{}

var _ interfaces.ITransitionMetrics = TransitionMetrics{}

func (TransitionMetrics) ObserveTransition(action, outcome string, elapsed time.Duration) {
	Transitions.WithLabelValues(action, outcome).Inc()
	TransitionLatency.WithLabelValues(action, outcome).Observe(elapsed.Seconds())
}

func (TransitionMetrics) ObservePoll(outcome string, records int, skipped int) {
	PollCycles.WithLabelValues(outcome).Inc()
	PollRecords.WithLabelValues("adopted").Add(float64(records))
	PollRecords.WithLabelValues("skipped").Add(float64(skipped))
}

// GinMiddleware observes every request by route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// StatusClass buckets an HTTP status for low-cardinality labels. Zero means
// the request never got a response.
func StatusClass(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code/100) + "xx"
}
