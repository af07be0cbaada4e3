// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs the strips of a parallel transpose on a fixed set
// of goroutines that live as long as the Pool.
//
// Transposes are memory-bandwidth bound, so a few workers streaming disjoint
// strips is usually all it takes to saturate memory; spawning goroutines per
// call would show up on small matrices. Create one Pool and share it:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelForAtomic(numStrips, func(strip int) {
//	    transposeStrip(strip)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. Its methods block until the submitted
// work completes, and may be called from several goroutines at once.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines, or GOMAXPROCS if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. It is idempotent.
// Work submitted after Close runs sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// submit hands fn to up to workers workers and waits for all of them.
func (p *Pool) submit(workers int, fn func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.tasks <- task{run: func() { fn(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	workers = (n + chunk - 1) / chunk
	p.submit(workers, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers claiming
// the next index from a shared counter. Use it when items take uneven time,
// like the short last strip of a matrix.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	p.submit(workers, func(int) {
		for {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			fn(i)
		}
	})
}
