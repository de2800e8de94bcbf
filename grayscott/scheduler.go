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

package grayscott

import (
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/ajroetker/go-grayscott/hwy/contrib/workerpool"
)

// State is the phase of a Scheduler.
type State int32

const (
	StateIdle State = iota
	StateDispatching
	StateRunning
	StateJoined
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateRunning:
		return "running"
	case StateJoined:
		return "joined"
	default:
		return "unknown"
	}
}

// MinRowsPerTask returns the smallest number of scalar rows of cols cells
// that holds at least minElems cells, and at least 1.
func MinRowsPerTask(minElems, cols int) int {
	if cols < 1 {
		return 1
	}
	return max(1, (minElems+cols-1)/cols)
}

// PlanBands splits the interior of a rows×cols grid into row bands for
// parallel execution. Bands are expressed in layout rows: scalar rows when
// lanes <= 1, super-rows of rows/lanes otherwise.
//
// A grid with fewer than MinRowsPerTask(minElems, cols) scalar rows gets a
// single band. Otherwise each band is ceil(minRows/lanes) layout rows, the
// last one possibly shorter.
func PlanBands(rows, cols, minElems, lanes int) []Span {
	lanes = max(lanes, 1)
	layoutRows := rows / lanes
	minRows := MinRowsPerTask(minElems, cols)
	if rows < minRows || layoutRows <= 1 {
		return []Span{{0, layoutRows}}
	}
	perBand := (minRows + lanes - 1) / lanes
	return lo.Map(lo.RangeWithSteps(0, layoutRows, perBand), func(start, _ int) Span {
		return Span{start, min(start+perBand, layoutRows)}
	})
}

// Scheduler runs one fan-out and join per step. Bands write disjoint rows
// of the destination, so the join is the only synchronization.
type Scheduler struct {
	exec  workerpool.Executor
	state atomic.Int32
}

// NewScheduler returns a scheduler that dispatches on exec. A nil exec runs
// every band on the calling goroutine.
func NewScheduler(exec workerpool.Executor) *Scheduler {
	return &Scheduler{exec: exec}
}

// State returns the current phase. It is safe to call from any goroutine.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Run calls fn once per band and returns after every call has finished.
// A single band, or a nil executor, runs sequentially on the caller. Once
// all bands have finished, join (if non-nil) runs on the caller in
// StateJoined, before the scheduler returns to StateIdle. Run is not
// reentrant.
func (s *Scheduler) Run(bands []Span, fn func(band Span), join func()) {
	s.state.Store(int32(StateDispatching))
	if s.exec == nil || len(bands) <= 1 {
		s.state.Store(int32(StateRunning))
		for _, band := range bands {
			fn(band)
		}
	} else {
		s.exec.ParallelForAtomic(len(bands), func(i int) {
			s.state.CompareAndSwap(int32(StateDispatching), int32(StateRunning))
			fn(bands[i])
		})
	}
	s.state.Store(int32(StateJoined))
	if join != nil {
		join()
	}
	s.state.Store(int32(StateIdle))
}
