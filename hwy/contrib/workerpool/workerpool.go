// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs index-space loops on a fixed set of goroutines.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//	pool.ParallelFor(rows, func(start, end int) { ... })
//	pool.ParallelForAtomic(bands, func(i int) { ... })
//
// Functions that accept an Executor treat a nil Executor as "run inline".
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Executor runs loop bodies in parallel. Both methods block until every
// index has been processed.
type Executor interface {
	// NumWorkers returns the maximum number of goroutines used per call.
	NumWorkers() int
	// ParallelFor splits [0, n) into contiguous ranges, one per worker.
	ParallelFor(n int, fn func(start, end int))
	// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim
	// indices from a shared atomic counter.
	ParallelForAtomic(n int, fn func(i int))
}

// paddedCounter keeps the work-stealing counter on its own cache line.
type paddedCounter struct {
	_ cpu.CacheLinePad
	n atomic.Int64
	_ cpu.CacheLinePad
}

// Pool is an Executor backed by persistent goroutines.
//
// A Pool may be shared by concurrent callers. Work that cannot be queued
// because every worker is busy runs on the calling goroutine.
type Pool struct {
	numWorkers int
	jobs       chan func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ Executor = (*Pool)(nil)

// New starts a pool of numWorkers goroutines. numWorkers <= 0 means
// runtime.GOMAXPROCS(0).
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan func(), numWorkers),
	}
	for range numWorkers {
		p.wg.Go(p.worker)
	}
	return p
}

func (p *Pool) worker() {
	for job := range p.jobs {
		job()
	}
}

// NumWorkers returns the number of pool goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued jobs drain. Calls made after Close
// run inline on the caller.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// run executes tasks[1:] on the pool where possible and tasks[0] on the
// caller, then waits for all of them.
func (p *Pool) run(tasks []func()) {
	var done sync.WaitGroup
	done.Add(len(tasks) - 1)

	var inline []func()
	p.mu.RLock()
	for _, task := range tasks[1:] {
		job := func() {
			defer done.Done()
			task()
		}
		if p.closed {
			inline = append(inline, job)
			continue
		}
		select {
		case p.jobs <- job:
		default:
			inline = append(inline, job)
		}
	}
	p.mu.RUnlock()

	tasks[0]()
	for _, job := range inline {
		job()
	}
	done.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	tasks := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		tasks = append(tasks, func() { fn(start, end) })
	}
	p.run(tasks)
}

// ParallelForAtomic calls fn(i) for each i in [0, n) using atomic work
// stealing, which balances uneven per-index cost.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	next := new(paddedCounter)
	steal := func() {
		for {
			i := int(next.n.Add(1) - 1)
			if i >= n {
				return
			}
			fn(i)
		}
	}
	tasks := make([]func(), workers)
	for i := range tasks {
		tasks[i] = steal
	}
	p.run(tasks)
}
