package globals

import (
	"sync"
	"sync/atomic"
)

// JobStatus is a dispatched unit of work's progress (spec.md §5:
// "progress signaled via an atomic status field per job").
type JobStatus int32

const (
	JobWaiting JobStatus = iota
	JobRunning
	JobSucceeded
	JobFailed
	JobSkipped
)

// Job is one unit of work handed to Dispatch. Precondition, if set, is
// checked before Run is launched; returning false marks the job
// JobSkipped without ever calling Run (spec.md §5: "jobs set SKIPPED
// when their precondition... is not met").
type Job struct {
	Precondition func() bool
	Run          func() error

	status atomic.Int32
	err    error
	mu     sync.Mutex
}

// Status returns the job's current status, safe to read concurrently
// with Dispatch running it.
func (j *Job) Status() JobStatus { return JobStatus(j.status.Load()) }

// Err returns the error Run returned, if the job finished JobFailed.
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.err
}

// Dispatch launches one goroutine per job (spec.md §5: "launches one
// thread per unit of work"), stdlib-only over sync.WaitGroup — no
// retrieved example wires a third-party worker-pool/errgroup library
// (see DESIGN.md). It returns immediately; call WaitJobs to join.
func Dispatch(jobs []*Job) *sync.WaitGroup {
	var wg sync.WaitGroup

	for _, j := range jobs {
		j.status.Store(int32(JobWaiting))
		wg.Add(1)

		go func(j *Job) {
			defer wg.Done()

			if j.Precondition != nil && !j.Precondition() {
				j.status.Store(int32(JobSkipped))

				return
			}

			j.status.Store(int32(JobRunning))

			if err := j.Run(); err != nil {
				j.mu.Lock()
				j.err = err
				j.mu.Unlock()
				j.status.Store(int32(JobFailed))

				return
			}

			j.status.Store(int32(JobSucceeded))
		}(j)
	}

	return &wg
}

// WaitJobs joins every job dispatched by Dispatch (spec.md §5:
// "wait_jobs(infos, n) joins every dispatched worker before
// returning").
func WaitJobs(wg *sync.WaitGroup) {
	wg.Wait()
}
