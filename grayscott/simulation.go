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
	"runtime"

	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/hwy/contrib/workerpool"
)

// Config selects how a Simulation runs. The zero Config picks the variant
// and vector width for the host, GOMAXPROCS workers and L1 blocking with a
// 32 KiB cache.
type Config struct {
	Variant Variant

	// Lanes is the vector width W. 0 uses the widest width the host
	// supports (hwy.CurrentWidth).
	Lanes int

	// Workers is the size of the pool the Simulation creates when Executor
	// is nil. 0 means GOMAXPROCS; 1 runs every step on the caller.
	Workers int

	// Executor runs the row bands. The Simulation does not close it.
	Executor workerpool.Executor

	// L1DataCacheBytes sizes column tiles. 0 means DefaultL1DataCacheBytes.
	L1DataCacheBytes int

	// DisableBlocking uses one tile spanning all columns.
	DisableBlocking bool

	// TileColumns forces the tile width in layout columns, rounded down to
	// the vector width. 0 derives it from L1DataCacheBytes.
	TileColumns int
}

// tileWidth resolves the tile width for a layout of cols columns whose tiles
// are aligned to align columns of elemBytes each.
func (c Config) tileWidth(cols, align, elemBytes int) int {
	switch {
	case c.DisableBlocking:
		return cols
	case c.TileColumns > 0:
		return max(c.TileColumns-c.TileColumns%align, align)
	}
	l1 := c.L1DataCacheBytes
	if l1 <= 0 {
		l1 = DefaultL1DataCacheBytes
	}
	return TileWidth(align, elemBytes, l1)
}

// Simulation owns the double-buffered state of a Gray-Scott run.
//
// Step, Run, CurrentV and Snapshot must not be called concurrently.
type Simulation[T hwy.Floats] struct {
	rows, cols int
	variant    Variant
	engine     engine[T]
	sched      *Scheduler
	pool       *workerpool.Pool // owned, nil when cfg.Executor is used

	bandsMinElems int
	bands         []Span

	steps uint64
}

// New returns a simulation starting from a copy of init.
//
// Panics with a *ConfigError if cfg cannot be satisfied: VariantLanes on a
// grid that is not a multiple of the lane count, or a lane count with no
// vector type for T.
func New[T hwy.Floats](init *Field[T], cfg Config) *Simulation[T] {
	rows, cols := init.Rows(), init.Cols()
	elem := elemSize[T]()

	lanes := cfg.Lanes
	if lanes == 0 {
		lanes = hwy.LanesFor(hwy.CurrentWidth(), elem)
	}

	variant := cfg.Variant
	if variant == VariantAuto {
		switch {
		case hwy.CurrentLevel() == hwy.DispatchScalar:
			variant = VariantScalar
		case ValidateShape(rows, cols, lanes) == nil:
			variant = VariantLanes
		default:
			variant = VariantSIMD
		}
	}
	if variant == VariantLanes {
		if err := ValidateShape(rows, cols, lanes); err != nil {
			configPanic("New", err)
		}
	}

	plan := func(align, elemBytes int) *Planner {
		return NewPlanner(cols, cfg.tileWidth(cols, align, elemBytes))
	}
	s := &Simulation[T]{
		rows:    rows,
		cols:    cols,
		variant: variant,
		engine:  buildEngine(init, variant, lanes, plan),
	}

	exec := cfg.Executor
	if exec == nil {
		workers := cfg.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		if workers > 1 {
			s.pool = workerpool.New(workers)
			exec = s.pool
		}
	}
	s.sched = NewScheduler(exec)
	return s
}

// Close releases the worker pool the simulation created, if any.
func (s *Simulation[T]) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// Rows returns the number of grid rows.
func (s *Simulation[T]) Rows() int { return s.rows }

// Cols returns the number of grid columns.
func (s *Simulation[T]) Cols() int { return s.cols }

// Variant returns the resolved variant, never VariantAuto.
func (s *Simulation[T]) Variant() Variant { return s.variant }

// Lanes returns the lane count of the layout: W for VariantLanes, else 1.
func (s *Simulation[T]) Lanes() int { return s.engine.layoutLanes() }

// TileWidth returns the column tile width in layout columns.
func (s *Simulation[T]) TileWidth() int { return s.engine.planner().Width() }

// Scheduler returns the scheduler running the row bands.
func (s *Simulation[T]) Scheduler() *Scheduler { return s.sched }

// Steps returns the number of completed steps.
func (s *Simulation[T]) Steps() uint64 { return s.steps }

// Bands returns the band plan used for minElems cells per task. The plan is
// cached for the most recent minElems.
func (s *Simulation[T]) Bands(minElems int) []Span {
	if s.bands == nil || s.bandsMinElems != minElems {
		s.bands = PlanBands(s.rows, s.cols, minElems, s.engine.layoutLanes())
		s.bandsMinElems = minElems
	}
	return s.bands
}

// Step advances the simulation by one time step.
// Panics with a *ConfigError if p is invalid.
func (s *Simulation[T]) Step(p Params) {
	if err := p.Validate(); err != nil {
		configPanic("Step", err)
	}
	s.engine.step(s.sched, s.Bands(p.MinElemsPerParallelTask), newCoeffs[T](p))
	s.steps++
}

// Run advances the simulation by n steps with the same parameters.
func (s *Simulation[T]) Run(n int, p Params) {
	for range n {
		s.Step(p)
	}
}

// CurrentV returns V after the most recent step. The matrix is owned by the
// simulation and is valid until the next Step. Callers must not modify it.
func (s *Simulation[T]) CurrentV() *Matrix[T] {
	return s.engine.currentV()
}

// Snapshot returns a deep copy of both species in row-major layout.
func (s *Simulation[T]) Snapshot() *Field[T] {
	return s.engine.snapshot()
}
