// Copyright 2026 The go-lanes Authors. SPDX-License-Identifier: Apache-2.0

// Package batch applies lane operations across many vector pairs at once.
// Each pair is independent, so the work may be spread over a persistent
// worker pool; the per-pair semantics (including the ascending-index fold
// order inside each dot product) are unchanged from package lanes.
//
// Usage:
//
//	pool := batch.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	dots := batch.Dots(pool, queries, keys)
//
// A nil *Pool is valid everywhere and runs sequentially.
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many batch operations.
// Workers are spawned once at creation and persist until Close.
type Pool struct {
	workers   int
	workC     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task is one unit of parallel work plus the barrier that its completion
// must signal.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, or GOMAXPROCS
// workers if n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		workC:   make(chan task, n),
	}
	for i := 0; i < n; i++ {
		go func() {
			for t := range p.workC {
				t.run()
				t.barrier.Done()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close shuts the pool down. Pending work completes; calling Close more
// than once is safe. Operations on a closed pool run sequentially.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor runs fn over contiguous chunks covering [0, n), blocking
// until every chunk completes. A nil or closed pool, or a small n, runs
// fn(0, n) on the calling goroutine.
func (p *Pool) parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			run:     func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
