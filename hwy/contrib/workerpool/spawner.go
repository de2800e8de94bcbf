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

package workerpool

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Spawner is an Executor that starts fresh goroutines for every call,
// bounded by an errgroup limit. It needs no Close.
type Spawner struct {
	limit int
}

var _ Executor = Spawner{}

// NewSpawner returns a Spawner running at most limit goroutines per call.
// limit <= 0 means runtime.GOMAXPROCS(0).
func NewSpawner(limit int) Spawner {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return Spawner{limit: limit}
}

// NumWorkers returns the goroutine limit.
func (s Spawner) NumWorkers() int {
	return max(s.limit, 1)
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges.
func (s Spawner) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(s.NumWorkers(), n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelForAtomic calls fn(i) for each i in [0, n) using atomic work
// stealing across at most NumWorkers goroutines.
func (s Spawner) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(s.NumWorkers(), n)

	var next atomic.Int64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				fn(i)
			}
		})
	}
	_ = g.Wait()
}
