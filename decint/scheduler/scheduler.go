// Package scheduler defines the fork/join abstraction Karatsuba recursion
// uses to parallelize its three sub-products: submit(taskFn) -> handle, join(handle) -> error.
//
// The default Pool is a thin wrapper over golang.org/x/sync/errgroup,
// bounded by a semaphore so a deep recursion doesn't spawn an unbounded
// number of live goroutines. It approximates work-stealing rather than
// implementing a true per-worker deque: every task contends for the same
// bounded semaphore instead of being handed to an idle worker's local
// queue. See DESIGN.md.
package scheduler

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Handle identifies a task submitted to a Scheduler. It carries no public
// fields; callers only ever pass it back to Join.
type Handle interface {
	wait() error
}

// Scheduler is the fork/join executor Karatsuba recursion depends on. A
// caller-supplied implementation lets the multiplicative engine run
// on top of a shared worker pool rather than opening its own.
type Scheduler interface {
	// Submit starts task, possibly asynchronously, and returns a Handle to
	// observe its completion via Join.
	Submit(task func() error) Handle
	// Join blocks until the task behind h has finished and returns its error.
	Join(h Handle) error
}

type taskHandle struct {
	eg *errgroup.Group
}

func (h *taskHandle) wait() error { return h.eg.Wait() }

// Pool is the default Scheduler: an errgroup-backed executor with at most
// workers tasks running concurrently.
type Pool struct {
	sem chan struct{}
}

// New returns a Pool that runs at most workers tasks at once. workers <= 0
// defaults to runtime.NumCPU().
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{sem: make(chan struct{}, workers)}
}

// Submit acquires a slot in the pool and runs task in its own goroutine.
func (p *Pool) Submit(task func() error) Handle {
	eg := &errgroup.Group{}
	eg.Go(func() error {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		return task()
	})
	return &taskHandle{eg: eg}
}

// Join waits for h's task and returns its error.
func (p *Pool) Join(h Handle) error {
	return h.wait()
}

// Workers returns the configured concurrency bound.
func (p *Pool) Workers() int { return cap(p.sem) }
