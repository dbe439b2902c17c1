// Package workerpool runs closures on a fixed number of goroutines that pull
// from a single unbounded FIFO queue.
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	if err := pool.Submit(func() { handle(conn) }); err != nil {
//	    // the pool is already shut down
//	}
//
// Close stops intake and waits until every job submitted before it has run.
// A job that panics is recovered on its worker, reported to the observers and
// the worker moves on to the next job, so the pool keeps its full size.
package workerpool
