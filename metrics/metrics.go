package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every collector of the service. It is separate from the
// default registry so tests can read values without global side effects.
var Registry = prometheus.NewRegistry()

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthghar",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthghar",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	StoreOps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthghar",
		Name:      "store_operation_duration_seconds",
		Help:      "Persistence call latency by operation, table and outcome.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"op", "table", "outcome"})

	BookingsRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthghar",
		Name:      "bookings_recorded_total",
		Help:      "Bookings written, by kind.",
	}, []string{"kind"})

	SagaSteps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthghar",
		Name:      "saga_steps_total",
		Help:      "Saga step executions by saga, step and outcome.",
	}, []string{"saga", "step", "outcome"})

	WizardTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthghar",
		Name:      "wizard_transitions_total",
		Help:      "Booking wizard events by event and outcome.",
	}, []string{"event", "outcome"})
)

func init() {
	Registry.MustRegister(
		HTTPRequests,
		HTTPDuration,
		StoreOps,
		BookingsRecorded,
		SagaSteps,
		WizardTransitions,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// Outcome labels an error as "ok" or "error".
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
