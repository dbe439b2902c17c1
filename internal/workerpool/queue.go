package workerpool

import (
	"container/list"
	"sync"
)

// Queue is an unbounded FIFO of jobs shared by any number of senders and
// receivers. Each job is handed to exactly one receiver.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   *list.List
	sent   uint64
	closed bool

	// delivered, when set, is called under mu with the send sequence number
	// of every job handed out by Receive.
	delivered func(seq uint64)
}

type entry struct {
	job Job
	seq uint64
}

func NewQueue() *Queue {
	q := &Queue{jobs: list.New()}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send appends job to the queue. It never blocks and fails only after Close.
func (q *Queue) Send(job Job) error {
	if job == nil {
		return ErrNilJob
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.jobs.PushBack(entry{job: job, seq: q.sent})
	q.sent++
	q.cond.Signal()
	return nil
}

// Receive blocks until a job is available or the queue is closed and empty.
// ok is false only in the latter case.
func (q *Queue) Receive() (job Job, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.jobs.Len() == 0 {
		if q.closed {
			return nil, false
		}
		q.cond.Wait()
	}
	e := q.jobs.Remove(q.jobs.Front()).(entry)
	if q.delivered != nil {
		q.delivered(e.seq)
	}
	return e.job, true
}

// Close rejects further sends. Jobs already buffered are still delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.jobs.Len()
}
