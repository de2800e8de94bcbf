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
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executors(t *testing.T) map[string]Executor {
	pool, single := New(4), New(1)
	t.Cleanup(pool.Close)
	t.Cleanup(single.Close)
	return map[string]Executor{
		"Pool":    pool,
		"Pool1":   single,
		"Spawner": NewSpawner(4),
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for name, ex := range executors(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 3, 4, 7, 100} {
				hits := make([]int32, n)
				ex.ParallelFor(n, func(start, end int) {
					assert.LessOrEqual(t, 0, start)
					assert.Less(t, start, end)
					assert.LessOrEqual(t, end, n)
					for i := start; i < end; i++ {
						atomic.AddInt32(&hits[i], 1)
					}
				})
				for i, h := range hits {
					require.EqualValuesf(t, 1, h, "n=%d index %d", n, i)
				}
			}
		})
	}
}

func TestParallelForAtomicCoversRange(t *testing.T) {
	for name, ex := range executors(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 5, 64, 1000} {
				hits := make([]int32, n)
				ex.ParallelForAtomic(n, func(i int) {
					atomic.AddInt32(&hits[i], 1)
				})
				for i, h := range hits {
					require.EqualValuesf(t, 1, h, "n=%d index %d", n, i)
				}
			}
		})
	}
}

func TestPoolDefaultsToGOMAXPROCS(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	assert.Positive(t, pool.NumWorkers())
	assert.Positive(t, NewSpawner(-1).NumWorkers())
}

func TestPoolConcurrentCallers(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			pool.ParallelForAtomic(50, func(i int) {
				total.Add(int64(i))
			})
		})
	}
	wg.Wait()
	assert.Equal(t, int64(8*50*49/2), total.Load())
}

func TestPoolAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	var count atomic.Int32
	pool.ParallelForAtomic(10, func(int) { count.Add(1) })
	pool.ParallelFor(10, func(start, end int) { count.Add(int32(end - start)) })
	assert.EqualValues(t, 20, count.Load())
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelForAtomic(64, func(i int) {
			chunk := data[i*1024 : (i+1)*1024]
			for j := range chunk {
				chunk[j] += 1
			}
		})
	}
}
