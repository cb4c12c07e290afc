// Package parallel runs batches of independent bake tasks across a fixed set
// of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a pool of goroutines for fanning out per-entry atlas work
// (dilation, mip chain construction, compositing).
//
// Tasks within one batch must be independent: the atlas pipeline guarantees
// that concurrent tasks write disjoint destination regions, so the pool does
// no locking around task effects.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// tasks feeds queued work to the workers.
	tasks chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// closeOnce guards shutdown.
	closeOnce sync.Once
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain queued work so Run callers are never stranded.
			for {
				select {
				case task := <-p.tasks:
					if task != nil {
						task()
					}
				default:
					return
				}
			}
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		}
	}
}

// Run executes every task and returns once all of them have completed.
// It acts as the barrier between pipeline stages: callers rely on all
// level-0 composites finishing before any whole-page downsample reads the
// page buffer. If the pool is closed, remaining tasks run on the caller's
// goroutine so the barrier still holds.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	var pendingWG sync.WaitGroup
	pendingWG.Add(len(tasks))

	for _, task := range tasks {
		task := task
		wrapped := func() {
			defer pendingWG.Done()
			task()
		}

		// A closed pool has no workers left to drain the queue, so the
		// task must not be parked in the channel buffer.
		select {
		case <-p.done:
			wrapped()
			continue
		default:
		}

		select {
		case p.tasks <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	pendingWG.Wait()
}

// Close stops all workers. Tasks already handed to a worker finish;
// Close waits for the workers to exit. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()
	})
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
