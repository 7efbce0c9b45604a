package jobapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 进程内只注册一次
var (
	callSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "jobapi_call_duration_seconds",
			Help: "Job service call duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"op", "result"},
	)
	callCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobapi_calls_total",
			Help: "Total number of job service calls",
		},
		[]string{"op", "result"},
	)
)

func observe(op, result string, start time.Time) {
	callSummary.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
	callCounter.WithLabelValues(op, result).Inc()
}
