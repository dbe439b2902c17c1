package workerpool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Pool runs submitted jobs on a fixed set of workers that share one
// unbounded queue. The worker count never changes after New.
type Pool struct {
	queue     *Queue
	workers   []*worker
	log       *slog.Logger
	observers observers

	running   atomic.Int32
	active    atomic.Int32
	completed atomic.Uint64
	failed    atomic.Uint64

	closeOnce sync.Once
	closeErr  error
}

type Stats struct {
	Workers   int    `json:"workers"`
	Running   int    `json:"running"`
	Active    int    `json:"active"`
	Queued    int    `json:"queued"`
	Completed uint64 `json:"completed"`
	Failed    uint64 `json:"failed"`
}

// New starts a pool of size workers. It panics if size is less than one.
func New(size int, opts ...Option) *Pool {
	if size < 1 {
		panic(fmt.Sprintf("workerpool: size must be at least 1, got %d", size))
	}

	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool{
		queue:     NewQueue(),
		workers:   make([]*worker, 0, size),
		log:       o.log,
		observers: observers{list: o.observers, log: o.log},
	}
	for id := 0; id < size; id++ {
		w := newWorker(id, p)
		p.workers = append(p.workers, w)
		w.start()
	}

	p.log.Info("worker pool started", "workers", size)
	return p
}

// Submit enqueues job for execution by the next idle worker. Submitting after
// Close is a programming error and yields ErrPoolClosed.
func (p *Pool) Submit(job Job) error {
	err := p.queue.Send(job)
	if errors.Is(err, ErrQueueClosed) {
		return errors.Wrap(ErrPoolClosed, "submit")
	}
	return err
}

// Close stops accepting jobs and blocks until every worker has drained the
// queue and exited. Workers are joined in id order. Only the first call does
// any work; later calls return its result.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.queue.Close()

		var errs error
		for _, w := range p.workers {
			p.log.Info("shutting down worker", "worker", w.id)
			if err := w.join(); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		p.closeErr = errs

		if errs != nil {
			p.log.Error("worker pool stopped with errors", "error", errs)
			return
		}
		p.log.Info("worker pool stopped",
			"completed", p.completed.Load(),
			"failed", p.failed.Load())
	})
	return p.closeErr
}

// Scoped builds a pool, passes it to fn and closes it on every exit path,
// including a panic in fn, which is re-raised once the pool has drained.
func Scoped(size int, fn func(p *Pool) error, opts ...Option) (err error) {
	p := New(size, opts...)
	defer func() {
		r := recover()
		err = multierr.Append(err, p.Close())
		if r != nil {
			panic(r)
		}
	}()
	return fn(p)
}

func (p *Pool) Size() int {
	return len(p.workers)
}

// Running reports workers whose loop has not terminated yet.
func (p *Pool) Running() int {
	return int(p.running.Load())
}

// Active reports workers currently executing a job.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

func (p *Pool) QueueSize() int {
	return p.queue.Len()
}

func (p *Pool) Completed() uint64 {
	return p.completed.Load()
}

func (p *Pool) Failed() uint64 {
	return p.failed.Load()
}

func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.Size(),
		Running:   p.Running(),
		Active:    p.Active(),
		Queued:    p.QueueSize(),
		Completed: p.Completed(),
		Failed:    p.Failed(),
	}
}
