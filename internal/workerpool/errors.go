package workerpool

import "errors"

var (
	ErrQueueClosed = errors.New("job queue is closed")
	ErrPoolClosed  = errors.New("worker pool is shut down")
	ErrNilJob      = errors.New("job is nil")
	ErrJobPanicked = errors.New("job panicked")
)
