package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics tracks the scheduled jobs: the expiry sweep and the
// withdrawal dispatcher.
type JobMetrics struct {
	jobDuration     *prometheus.HistogramVec
	jobRunsTotal    *prometheus.CounterVec
	sweptSwapsTotal prometheus.Counter
}

func NewJobMetrics() *JobMetrics {
	return &JobMetrics{
		jobDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "junction_backend_job_duration_seconds",
				Help:    "Duration of scheduled job runs in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"job", "status"},
		),

		jobRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "junction_backend_job_runs_total",
				Help: "Total number of scheduled job runs",
			},
			[]string{"job", "status"},
		),

		sweptSwapsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "junction_backend_swept_swaps_total",
				Help: "Total number of expired swap requests refunded by the sweep",
			},
		),
	}
}

func (m *JobMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.jobDuration,
		m.jobRunsTotal,
		m.sweptSwapsTotal,
	)
}

// ObserveRun records one run of a scheduled job.
func (m *JobMetrics) ObserveRun(job string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.jobDuration.WithLabelValues(job, status).Observe(time.Since(start).Seconds())
	m.jobRunsTotal.WithLabelValues(job, status).Inc()
}

// AddSweptSwaps counts refunded requests from one sweep run.
func (m *JobMetrics) AddSweptSwaps(count int) {
	m.sweptSwapsTotal.Add(float64(count))
}
