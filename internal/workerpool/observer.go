package workerpool

import (
	"log/slog"
	"time"
)

// Observer receives lifecycle events from the workers. Methods are called on
// the worker's own goroutine, so implementations must be safe for concurrent use
// and must not block for long.
type Observer interface {
	WorkerStarted(id int)
	JobStarted(id int)
	// JobFinished reports a completed job; err is non-nil when the job panicked.
	JobFinished(id int, elapsed time.Duration, err error)
	WorkerStopped(id int)
}

// observers fans events out to every attached Observer. A panicking observer
// loses that one notification; the worker and its job are unaffected.
type observers struct {
	list []Observer
	log  *slog.Logger
}

func (o observers) notify(event string, id int, call func(Observer)) {
	for _, obs := range o.list {
		o.guard(event, id, obs, call)
	}
}

func (o observers) guard(event string, id int, obs Observer, call func(Observer)) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("observer panicked", "event", event, "worker", id, "panic", r)
		}
	}()
	call(obs)
}

func (o observers) WorkerStarted(id int) {
	o.notify("worker_started", id, func(obs Observer) { obs.WorkerStarted(id) })
}

func (o observers) JobStarted(id int) {
	o.notify("job_started", id, func(obs Observer) { obs.JobStarted(id) })
}

func (o observers) JobFinished(id int, elapsed time.Duration, err error) {
	o.notify("job_finished", id, func(obs Observer) { obs.JobFinished(id, elapsed, err) })
}

func (o observers) WorkerStopped(id int) {
	o.notify("worker_stopped", id, func(obs Observer) { obs.WorkerStopped(id) })
}

// LogObserver writes worker events to a structured logger.
type LogObserver struct {
	log *slog.Logger
}

func NewLogObserver(log *slog.Logger) *LogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &LogObserver{log: log}
}

func (l *LogObserver) WorkerStarted(id int) {
	l.log.Debug("worker started", "worker", id)
}

func (l *LogObserver) JobStarted(id int) {
	l.log.Debug("worker got a job; executing", "worker", id)
}

func (l *LogObserver) JobFinished(id int, elapsed time.Duration, err error) {
	if err != nil {
		l.log.Error("job failed", "worker", id, "elapsed", elapsed, "error", err)
		return
	}
	l.log.Debug("job done", "worker", id, "elapsed", elapsed)
}

func (l *LogObserver) WorkerStopped(id int) {
	l.log.Info("worker disconnected; shutting down", "worker", id)
}
