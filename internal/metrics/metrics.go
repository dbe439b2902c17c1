package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webserver_jobs_total",
		Help: "The total number of jobs executed by the worker pool",
	}, []string{"result"})

	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "webserver_job_duration_seconds",
		Help:    "Duration of worker pool jobs in seconds",
		Buckets: prometheus.DefBuckets,
	})

	WorkersBusy = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "webserver_workers_busy",
		Help: "Number of workers currently executing a job",
	})

	WorkersRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "webserver_workers_running",
		Help: "Number of worker loops that have not terminated",
	})

	QueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "webserver_queue_size",
		Help: "Current number of jobs waiting in the queue",
	})

	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webserver_responses_total",
		Help: "The total number of responses written, by status code",
	}, []string{"status"})

	PageCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webserver_page_cache_lookups_total",
		Help: "Total number of page cache hits/misses",
	}, []string{"result"})
)
