package workerpool

import "fmt"

// Job is a unit of work executed exactly once by whichever worker dequeues it.
// It captures all the state it needs.
type Job func()

// run invokes the job and converts a panic into an error so that a failing
// job only ends the current iteration of its worker.
func (j Job) run() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case error:
			err = fmt.Errorf("%w: %w", ErrJobPanicked, v)
		default:
			err = fmt.Errorf("%w: %v", ErrJobPanicked, v)
		}
	}()
	j()
	return nil
}
