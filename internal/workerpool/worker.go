package workerpool

import (
	"fmt"
	"time"
)

type worker struct {
	id   int
	pool *Pool
	done chan struct{}
	// err is written before done is closed.
	err error
}

func newWorker(id int, p *Pool) *worker {
	return &worker{
		id:   id,
		pool: p,
		done: make(chan struct{}),
	}
}

func (w *worker) start() {
	w.pool.running.Add(1)
	go w.loop()
}

func (w *worker) loop() {
	defer close(w.done)
	defer w.pool.running.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			w.err = fmt.Errorf("worker %d terminated abnormally: %v", w.id, r)
		}
	}()

	obs := w.pool.observers
	obs.WorkerStarted(w.id)
	for {
		job, ok := w.pool.queue.Receive()
		if !ok {
			obs.WorkerStopped(w.id)
			return
		}

		obs.JobStarted(w.id)
		w.pool.active.Add(1)
		start := time.Now()
		err := job.run()
		elapsed := time.Since(start)
		w.pool.active.Add(-1)

		if err != nil {
			w.pool.failed.Add(1)
		} else {
			w.pool.completed.Add(1)
		}
		obs.JobFinished(w.id, elapsed, err)
	}
}

func (w *worker) join() error {
	<-w.done
	return w.err
}
