package syncsvc

import "github.com/prometheus/client_golang/prometheus"

var (
	ProcessedOps = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sync_processed_total", Help: "Total mirror operations applied to the remote"},
	)
	FailedOps = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sync_failed_total", Help: "Total mirror operations that failed and went to the retry queue"},
	)
	RetriedOps = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sync_retried_total", Help: "Total retry attempts on previously failed operations"},
	)
	DroppedOps = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sync_dropped_total", Help: "Total mirror operations dropped because a queue was full"},
	)
)

func Register() {
	prometheus.MustRegister(ProcessedOps, FailedOps, RetriedOps, DroppedOps)
}
