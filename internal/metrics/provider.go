package metrics

import (
	"strconv"
	"time"
)

// MetricsProvider is everything the server and the pool report. It embeds the
// pool's observer methods so a provider can be attached with
// workerpool.WithObserver.
type MetricsProvider interface {
	WorkerStarted(id int)
	JobStarted(id int)
	JobFinished(id int, elapsed time.Duration, err error)
	WorkerStopped(id int)

	UpdateQueueSize(size int)
	ResponseWritten(status int)
	PageCacheLookup(hit bool)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) WorkerStarted(int) {
	WorkersRunning.Inc()
}

func (p *PrometheusProvider) JobStarted(int) {
	WorkersBusy.Inc()
}

func (p *PrometheusProvider) JobFinished(_ int, elapsed time.Duration, err error) {
	WorkersBusy.Dec()
	JobDuration.Observe(elapsed.Seconds())
	if err != nil {
		JobsTotal.WithLabelValues("failed").Inc()
		return
	}
	JobsTotal.WithLabelValues("ok").Inc()
}

func (p *PrometheusProvider) WorkerStopped(int) {
	WorkersRunning.Dec()
}

func (p *PrometheusProvider) UpdateQueueSize(size int) {
	QueueSize.Set(float64(size))
}

func (p *PrometheusProvider) ResponseWritten(status int) {
	ResponsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (p *PrometheusProvider) PageCacheLookup(hit bool) {
	if hit {
		PageCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	PageCacheLookups.WithLabelValues("miss").Inc()
}

type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) WorkerStarted(int)                     {}
func (p *NoOpProvider) JobStarted(int)                        {}
func (p *NoOpProvider) JobFinished(int, time.Duration, error) {}
func (p *NoOpProvider) WorkerStopped(int)                     {}
func (p *NoOpProvider) UpdateQueueSize(int)                   {}
func (p *NoOpProvider) ResponseWritten(int)                   {}
func (p *NoOpProvider) PageCacheLookup(bool)                  {}
