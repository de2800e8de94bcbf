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
	"fmt"

	"github.com/ajroetker/go-grayscott/hwy"
)

// engine advances one layout of the field by one step.
type engine[T hwy.Floats] interface {
	step(s *Scheduler, bands []Span, k coeffs[T])
	// layoutLanes is 1 for row-major layouts and W for the lane layout.
	layoutLanes() int
	planner() *Planner
	currentV() *Matrix[T]
	snapshot() *Field[T]
}

// kernelFunc updates one tile of a row-major field.
type kernelFunc[T hwy.Floats] func(src, dst *Field[T], t Tile, k coeffs[T])

// planFunc builds the column planner for tiles aligned to align columns of
// elemBytes each.
type planFunc func(align, elemBytes int) *Planner

type rowMajorEngine[T hwy.Floats] struct {
	buf    *DoubleBuffer[*Field[T]]
	tiles  *Planner
	kernel kernelFunc[T]
}

func newRowMajorEngine[T hwy.Floats](init *Field[T], kernel kernelFunc[T], tiles *Planner) *rowMajorEngine[T] {
	return &rowMajorEngine[T]{
		buf:    NewDoubleBuffer(init.Clone(), NewZeroField[T](init.Rows(), init.Cols())),
		tiles:  tiles,
		kernel: kernel,
	}
}

func (e *rowMajorEngine[T]) step(s *Scheduler, bands []Span, k coeffs[T]) {
	e.buf.Step(func(src, dst *Field[T]) {
		s.Run(bands, func(band Span) {
			e.tiles.ForEach(band, func(t Tile) {
				e.kernel(src, dst, t, k)
			})
		}, nil)
	})
}

func (e *rowMajorEngine[T]) layoutLanes() int { return 1 }
func (e *rowMajorEngine[T]) planner() *Planner { return e.tiles }
func (e *rowMajorEngine[T]) currentV() *Matrix[T] { return e.buf.Current().V }
func (e *rowMajorEngine[T]) snapshot() *Field[T] { return e.buf.Current().Clone() }

type laneEngine[T hwy.Floats, Vec hwy.Vector[T, Vec]] struct {
	buf   *DoubleBuffer[*LaneField[T, Vec]]
	tiles *Planner

	// view caches the unpacked V of the current state.
	view      *Matrix[T]
	viewFresh bool
}

func newLaneEngine[T hwy.Floats, Vec hwy.Vector[T, Vec]](init *Field[T], tiles *Planner) *laneEngine[T, Vec] {
	rows, cols := init.Rows(), init.Cols()
	cur := NewLaneField[T, Vec](rows, cols)
	PackField(cur, init)
	return &laneEngine[T, Vec]{
		buf:   NewDoubleBuffer(cur, NewLaneField[T, Vec](rows, cols)),
		tiles: tiles,
		view:  NewMatrix[T](rows, cols),
	}
}

func (e *laneEngine[T, Vec]) step(s *Scheduler, bands []Span, k coeffs[T]) {
	vk := broadcastCoeffs[T, Vec](k)
	e.buf.Step(func(src, dst *LaneField[T, Vec]) {
		s.Run(bands, func(band Span) {
			e.tiles.ForEach(band, func(t Tile) {
				stencilLanes(src, dst, t, vk)
			})
		}, dst.UpdateTopBottom)
	})
	e.viewFresh = false
}

func (e *laneEngine[T, Vec]) layoutLanes() int { return hwy.MaxLanes[Vec]() }
func (e *laneEngine[T, Vec]) planner() *Planner { return e.tiles }

func (e *laneEngine[T, Vec]) currentV() *Matrix[T] {
	if !e.viewFresh {
		UnpackLanes(e.view, e.buf.Current().V)
		e.viewFresh = true
	}
	return e.view
}

func (e *laneEngine[T, Vec]) snapshot() *Field[T] {
	cur := e.buf.Current()
	f := NewZeroField[T](cur.Rows(), cur.Cols())
	UnpackField(f, cur)
	return f
}

// elemSize returns the size of T in bytes.
func elemSize[T hwy.Floats]() int {
	switch any(T(0)).(type) {
	case float32:
		return 4
	case float64:
		return 8
	default:
		configPanic("New", fmt.Errorf("%w: unsupported element type %T", ErrInvalidConfig, T(0)))
		return 0
	}
}

func unsupportedLanes(elem string, lanes int, valid string) {
	configPanic("New", fmt.Errorf("%w: %d %s lanes (valid: %s)", ErrInvalidConfig, lanes, elem, valid))
}

// buildEngine instantiates the kernels for T and the lane count. The vector
// width is a type parameter, so every supported width is its own
// instantiation.
func buildEngine[T hwy.Floats](init *Field[T], variant Variant, lanes int, plan planFunc) engine[T] {
	if variant == VariantScalar {
		return newRowMajorEngine(init, stencilScalar[T], plan(1, elemSize[T]()))
	}
	switch f := any(init).(type) {
	case *Field[float32]:
		return any(buildEngine32(f, variant, lanes, plan)).(engine[T])
	case *Field[float64]:
		return any(buildEngine64(f, variant, lanes, plan)).(engine[T])
	}
	configPanic("New", fmt.Errorf("%w: unsupported element type %T", ErrInvalidConfig, T(0)))
	return nil
}

func buildEngine32(f *Field[float32], variant Variant, lanes int, plan planFunc) engine[float32] {
	switch lanes {
	case 4:
		return vectorEngine[float32, hwy.Float32x4](f, variant, plan)
	case 8:
		return vectorEngine[float32, hwy.Float32x8](f, variant, plan)
	case 16:
		return vectorEngine[float32, hwy.Float32x16](f, variant, plan)
	}
	unsupportedLanes("float32", lanes, "4, 8, 16")
	return nil
}

func buildEngine64(f *Field[float64], variant Variant, lanes int, plan planFunc) engine[float64] {
	switch lanes {
	case 2:
		return vectorEngine[float64, hwy.Float64x2](f, variant, plan)
	case 4:
		return vectorEngine[float64, hwy.Float64x4](f, variant, plan)
	case 8:
		return vectorEngine[float64, hwy.Float64x8](f, variant, plan)
	}
	unsupportedLanes("float64", lanes, "2, 4, 8")
	return nil
}

func vectorEngine[T hwy.Floats, Vec hwy.Vector[T, Vec]](f *Field[T], variant Variant, plan planFunc) engine[T] {
	w, e := hwy.MaxLanes[Vec](), elemSize[T]()
	if variant == VariantLanes {
		// One layout column is a whole vector.
		return newLaneEngine[T, Vec](f, plan(1, e*w))
	}
	return newRowMajorEngine(f, stencilSIMD[T, Vec], plan(w, e))
}
