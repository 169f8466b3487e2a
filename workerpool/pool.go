// Package workerpool provides a bounded goroutine pool with
// submit/submit-with-result/group-submit semantics and a WaitGroup
// primitive used for fan-out/fan-in engine steps. Ported from
// original_source/crates/radiate-core/src/domain/thread_pool.rs,
// translated from an OS-thread-per-worker model into goroutines over
// channels, the idiomatic Go shape for the same contract.
package workerpool

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// job is a fire-and-forget unit of work submitted to the pool.
type job func()

// Pool is a fixed-size pool of worker goroutines.
type Pool struct {
	jobs         chan job
	wg           sync.WaitGroup
	alive        atomic.Bool
	size         int
	aliveWorkers atomic.Int32

	// allDead is closed exactly once, the moment aliveWorkers reaches
	// zero. A submitter blocked sending on jobs selects against this
	// channel too, so a pool whose last worker just died (e.g. the
	// default num_threads=1 case, where one panicking evaluation kills
	// the only worker) unblocks pending/future submissions instead of
	// hanging forever with no receiver left to drain jobs.
	allDead     chan struct{}
	allDeadOnce sync.Once
}

// New creates a pool with size workers. size must be >= 1.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		jobs:    make(chan job),
		size:    size,
		allDead: make(chan struct{}),
	}
	p.alive.Store(true)
	p.aliveWorkers.Store(int32(size))
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// NumWorkers returns the number of workers the pool was created with.
func (p *Pool) NumWorkers() int { return p.size }

// AliveWorkers returns the number of workers that have not yet died to
// a panicking job. Starts equal to NumWorkers and only ever decreases.
func (p *Pool) AliveWorkers() int { return int(p.aliveWorkers.Load()) }

// IsAlive reports whether the pool is still accepting work.
func (p *Pool) IsAlive() bool { return p.alive.Load() }

// worker pulls jobs until the channel closes or one of them panics. A
// panic is fatal to this worker (spec §4.1/§5): runProtected reports it
// died, and the worker exits instead of continuing to loop, leaving the
// remaining workers to drain what's left of jobs.
func (p *Pool) worker() {
	defer p.wg.Done()
	defer func() {
		if p.aliveWorkers.Add(-1) == 0 {
			p.allDeadOnce.Do(func() { close(p.allDead) })
		}
	}()
	for j := range p.jobs {
		if !runProtected(j) {
			return
		}
	}
}

// runProtected executes f, recovering any panic so it cannot take down
// the pool, and reports whether f completed without panicking.
func runProtected(f job) (ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			log.Printf("workerpool: worker died on panic: %v", r)
			ok = false
		}
	}()
	f()
	return
}

// Submit enqueues f for fire-and-forget execution by some worker. Panics
// if the pool has been closed, or if every worker has already died to a
// panicking job (nothing left to receive f) - the same "no receiver
// left" condition SubmitWithResult instead reports through its Handle.
func (p *Pool) Submit(f func()) {
	if !p.alive.Load() {
		panic("workerpool: submit after close")
	}
	select {
	case p.jobs <- f:
	case <-p.allDead:
		panic("workerpool: all workers have died, no receiver for submitted job")
	}
}

// Handle is a future-like handle to the result of a submitted closure.
type Handle[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Result blocks until the submitted closure completes and returns its
// value, or a non-nil error if the closure panicked instead of
// returning - the EvaluationLost case callers like EvaluateStep must
// surface rather than silently losing the result.
func (h *Handle[T]) Result() (T, error) {
	<-h.done
	return h.val, h.err
}

// SubmitWithResult submits f for execution and returns a Handle whose
// Result() blocks until f completes. If f panics, the Handle still
// unblocks: Result() returns the zero value and a non-nil error, and
// the panic is re-raised afterward so the owning worker dies (see worker).
//
// Unlike Submit, this never blocks forever or panics the submitting
// goroutine when no worker is left to receive the job (e.g. the default
// num_threads=1 pool, whose only worker just died evaluating a prior
// submission): it races the send against allDead and, if every worker
// is already dead, resolves the Handle with an error instead - the
// EvaluationLost path EvaluateStep depends on to stay reachable rather
// than deadlocking the engine.
func SubmitWithResult[T any](p *Pool, f func() T) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	wrapped := func() {
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("workerpool: job panicked: %v", r)
				close(h.done)
				panic(r)
			}
		}()
		h.val = f()
		close(h.done)
	}

	if !p.alive.Load() {
		panic("workerpool: submit after close")
	}
	select {
	case p.jobs <- wrapped:
	case <-p.allDead:
		h.err = fmt.Errorf("workerpool: all workers died before this job could run")
		close(h.done)
	}
	return h
}

// GroupSubmit increments wg, runs f, and decrements wg on exit,
// regardless of whether f panics (panics are still contained by the
// pool's own recover in the worker loop).
func GroupSubmit(p *Pool, wg *WaitGroup, f func()) {
	guard := wg.Guard()
	p.Submit(func() {
		defer guard.Release()
		f()
	})
}

// Close sends one terminate signal per worker and blocks until every
// worker has exited. After Close returns, IsAlive() is false. Submitting
// after Close panics.
func (p *Pool) Close() {
	if !p.alive.CompareAndSwap(true, false) {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}
