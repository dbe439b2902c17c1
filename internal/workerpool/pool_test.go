package workerpool

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/safariproxd/webserver/internal/workerpool/mock"
)

var errBoom = errors.New("boom")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordStops makes obs accept any WorkerStarted call and collect the ids
// passed to WorkerStopped.
func recordStops(obs *mock.ObserverMock) func() []int {
	var (
		mu      sync.Mutex
		stopped []int
	)
	obs.WorkerStartedMock.Return()
	obs.WorkerStoppedMock.Set(func(id int) {
		mu.Lock()
		stopped = append(stopped, id)
		mu.Unlock()
	})
	return func() []int {
		mu.Lock()
		defer mu.Unlock()
		return append([]int(nil), stopped...)
	}
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for job")
	}
}

func TestNew_SpawnsWorkers(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 8} {
		size := size
		t.Run(fmt.Sprintf("Size_%d", size), func(t *testing.T) {
			t.Parallel()
			ctrl := minimock.NewController(t)
			obs := mock.NewObserverMock(ctrl)
			stopped := recordStops(obs)
			p := New(size, WithLogger(quietLogger()), WithObserver(obs))

			assert.Equal(t, size, p.Size())
			assert.Equal(t, size, p.Running())

			require.NoError(t, p.Close())
			assert.Zero(t, p.Running())
			assert.Equal(t, uint64(size), obs.WorkerStartedAfterCounter())

			ids := make([]int, size)
			for id := range ids {
				ids[id] = id
			}
			assert.ElementsMatch(t, ids, stopped())
		})
	}
}

func TestNew_InvalidSizePanics(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -3} {
		assert.Panics(t, func() { New(size, WithLogger(quietLogger())) })
	}
	assert.PanicsWithValue(t, "workerpool: size must be at least 1, got 0", func() {
		New(0)
	})
}

func TestPool_EveryJobRunsOnce(t *testing.T) {
	t.Parallel()

	p := New(4, WithLogger(quietLogger()))
	const jobs = 500

	counts := make([]atomic.Int32, jobs)
	for i := 0; i < jobs; i++ {
		i := i
		require.NoError(t, p.Submit(func() { counts[i].Add(1) }))
	}
	require.NoError(t, p.Close())

	for i := range counts {
		assert.Equal(t, int32(1), counts[i].Load(), "job %d", i)
	}
	assert.Equal(t, uint64(jobs), p.Completed())
	assert.Zero(t, p.Failed())
}

func TestPool_DeliveryFollowsSubmission(t *testing.T) {
	t.Parallel()

	// With one worker, execution order equals delivery order.
	p := New(1, WithLogger(quietLogger()))
	var got []int
	for i := 0; i < 50; i++ {
		i := i
		require.NoError(t, p.Submit(func() { got = append(got, i) }))
	}
	require.NoError(t, p.Close())

	want := make([]int, 50)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestPool_DeliveryFollowsSubmissionWithCompetingWorkers(t *testing.T) {
	t.Parallel()

	p := New(4, WithLogger(quietLogger()))

	// Stamps are taken under the queue lock at the moment a worker dequeues.
	var stamps []uint64
	p.queue.mu.Lock()
	p.queue.delivered = func(seq uint64) { stamps = append(stamps, seq) }
	p.queue.mu.Unlock()

	const jobs = 300
	var ran atomic.Int32
	for i := 0; i < jobs; i++ {
		require.NoError(t, p.Submit(func() { ran.Add(1) }))
	}
	require.NoError(t, p.Close())

	want := make([]uint64, jobs)
	for i := range want {
		want[i] = uint64(i)
	}
	assert.Equal(t, want, stamps)
	assert.Equal(t, int32(jobs), ran.Load())
}

func TestPool_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		closed  bool
		job     Job
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "Success_Open",
			job:     func() {},
			wantErr: assert.NoError,
		},
		{
			name: "Fail_NilJob",
			job:  nil,
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrNilJob)
			},
		},
		{
			name:   "Fail_AfterClose",
			closed: true,
			job:    func() {},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrPoolClosed) &&
					assert.Contains(t, err.Error(), "submit")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New(1, WithLogger(quietLogger()))
			if tt.closed {
				require.NoError(t, p.Close())
			}
			tt.wantErr(t, p.Submit(tt.job))
			require.NoError(t, p.Close())
		})
	}
}

func TestPool_CloseDrainsSlowJobs(t *testing.T) {
	t.Parallel()

	p := New(2, WithLogger(quietLogger()))
	const jobs = 6

	var done atomic.Int32
	for i := 0; i < jobs; i++ {
		require.NoError(t, p.Submit(func() {
			time.Sleep(20 * time.Millisecond)
			done.Add(1)
		}))
	}

	require.NoError(t, p.Close())
	assert.Equal(t, int32(jobs), done.Load())
	assert.Zero(t, p.QueueSize())
	assert.Zero(t, p.Active())
}

func TestPool_ConcurrentSubmitters(t *testing.T) {
	t.Parallel()

	p := New(1, WithLogger(quietLogger()))
	const (
		submitters = 8
		perSender  = 200
	)

	type entry struct{ sender, seq int }
	var log []entry

	var wg sync.WaitGroup
	for s := 0; s < submitters; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for n := 0; n < perSender; n++ {
				n := n
				assert.NoError(t, p.Submit(func() { log = append(log, entry{s, n}) }))
			}
		}(s)
	}
	wg.Wait()
	require.NoError(t, p.Close())

	require.Len(t, log, submitters*perSender)
	next := make([]int, submitters)
	for _, e := range log {
		assert.Equal(t, next[e.sender], e.seq, "submitter %d", e.sender)
		next[e.sender] = e.seq + 1
	}
}

func TestPool_FiveJobsOnTwoWorkers(t *testing.T) {
	t.Parallel()

	p := New(2, WithLogger(quietLogger()))

	var (
		mu  sync.Mutex
		log []int
	)
	finished := make(chan int, 5)
	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, p.Submit(func() {
			mu.Lock()
			log = append(log, i)
			mu.Unlock()
			finished <- i
		}))
	}
	require.NoError(t, p.Close())

	assert.Len(t, finished, 5)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, log)
}

func TestPool_PanickingJobIsIsolated(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	obs := mock.NewObserverMock(ctrl)
	stopped := recordStops(obs)
	obs.JobStartedMock.Times(2).Return()

	var (
		mu       sync.Mutex
		finished []error
	)
	obs.JobFinishedMock.Set(func(id int, _ time.Duration, err error) {
		mu.Lock()
		finished = append(finished, err)
		mu.Unlock()
	})

	p := New(1, WithLogger(quietLogger()), WithObserver(obs))

	require.NoError(t, p.Submit(func() { panic(errBoom) }))

	second := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(second) }))
	waitClosed(t, second)

	require.NoError(t, p.Close())
	assert.Equal(t, uint64(1), p.Failed())
	assert.Equal(t, uint64(1), p.Completed())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, finished, 2)
	assert.ErrorIs(t, finished[0], ErrJobPanicked)
	assert.ErrorIs(t, finished[0], errBoom)
	assert.NoError(t, finished[1])
	assert.Equal(t, []int{0}, stopped())
}

func TestPool_ObserverPanicCostsOnlyTheNotification(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	faulty := mock.NewObserverMock(ctrl)
	faulty.WorkerStartedMock.Return()
	faulty.WorkerStoppedMock.Return()
	var startCalls atomic.Int32
	faulty.JobStartedMock.Set(func(int) {
		if startCalls.Add(1) == 1 {
			panic("observer boom")
		}
	})
	faulty.JobFinishedMock.Set(func(int, time.Duration, error) {
		panic("observer exploded")
	})

	next := mock.NewObserverMock(ctrl)
	next.WorkerStartedMock.Expect(0).Return()
	next.WorkerStoppedMock.Expect(0).Return()
	next.JobStartedMock.Times(4).Return()
	next.JobFinishedMock.Times(4).Return()

	p := New(1, WithLogger(quietLogger()), WithObserver(faulty, next))

	var ran atomic.Int32
	first := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		ran.Add(1)
		close(first)
	}))
	waitClosed(t, first)
	assert.Equal(t, 1, p.Running())

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Submit(func() { ran.Add(1) }))
	}

	require.NoError(t, p.Close())
	assert.Equal(t, int32(4), ran.Load())
	assert.Equal(t, uint64(4), p.Completed())
	assert.Zero(t, p.QueueSize())
	assert.Equal(t, int32(4), startCalls.Load())
}

func TestWorker_LoopFailureIsReportedOnJoin(t *testing.T) {
	t.Parallel()

	// A pool without a queue makes Receive fail outside any job.
	p := &Pool{log: quietLogger()}
	w := newWorker(0, p)
	w.start()

	err := w.join()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker 0 terminated abnormally")
	assert.Zero(t, p.Running())
}

func TestPool_CloseTwice(t *testing.T) {
	t.Parallel()

	p := New(3, WithLogger(quietLogger()))
	require.NoError(t, p.Close())

	done := make(chan struct{})
	go func() {
		assert.NoError(t, p.Close())
		close(done)
	}()
	waitClosed(t, done)
}

func TestPool_Stats(t *testing.T) {
	t.Parallel()

	p := New(2, WithLogger(quietLogger()))
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		require.NoError(t, p.Submit(func() {
			started <- struct{}{}
			<-release
		}))
	}
	require.NoError(t, p.Submit(func() {}))

	<-started
	<-started
	stats := p.Stats()
	assert.Equal(t, Stats{Workers: 2, Running: 2, Active: 2, Queued: 1}, stats)

	close(release)
	require.NoError(t, p.Close())
	assert.Equal(t, Stats{Workers: 2, Completed: 3}, p.Stats())
}

func TestScoped(t *testing.T) {
	t.Parallel()

	t.Run("Success_ClosesPool", func(t *testing.T) {
		t.Parallel()
		var (
			ran  atomic.Int32
			pool *Pool
		)
		err := Scoped(2, func(p *Pool) error {
			pool = p
			for i := 0; i < 10; i++ {
				if err := p.Submit(func() { ran.Add(1) }); err != nil {
					return err
				}
			}
			return nil
		}, WithLogger(quietLogger()))

		require.NoError(t, err)
		assert.Equal(t, int32(10), ran.Load())
		assert.ErrorIs(t, pool.Submit(func() {}), ErrPoolClosed)
	})

	t.Run("Fail_ReturnsCallbackError", func(t *testing.T) {
		t.Parallel()
		var ran atomic.Int32
		err := Scoped(1, func(p *Pool) error {
			_ = p.Submit(func() { ran.Add(1) })
			return errBoom
		}, WithLogger(quietLogger()))

		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, int32(1), ran.Load())
	})

	t.Run("Fail_PanicAfterDrain", func(t *testing.T) {
		t.Parallel()
		var ran atomic.Int32
		assert.PanicsWithValue(t, "callback exploded", func() {
			_ = Scoped(1, func(p *Pool) error {
				_ = p.Submit(func() {
					time.Sleep(10 * time.Millisecond)
					ran.Add(1)
				})
				panic("callback exploded")
			}, WithLogger(quietLogger()))
		})
		assert.Equal(t, int32(1), ran.Load())
	})
}

func TestJob_RunRecoversPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		job     Job
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "Success_NoPanic",
			job:     func() {},
			wantErr: assert.NoError,
		},
		{
			name: "Fail_ErrorValue",
			job:  func() { panic(errBoom) },
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrJobPanicked) && assert.ErrorIs(t, err, errBoom)
			},
		},
		{
			name: "Fail_StringValue",
			job:  func() { panic("bad request line") },
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrJobPanicked) &&
					assert.EqualError(t, err, "job panicked: bad request line")
			},
		},
		{
			name: "Fail_OtherValue",
			job:  func() { panic(42) },
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.EqualError(t, err, "job panicked: 42")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.wantErr(t, tt.job.run())
		})
	}
}
