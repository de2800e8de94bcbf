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
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-grayscott/hwy"
)

// Params are the model parameters of one step. Each can be changed between
// steps.
type Params struct {
	FeedRate   float64 // F
	KillRate   float64 // k
	DeltaT     float64 // dt
	DiffusionU float64 // Du
	DiffusionV float64 // Dv

	// MinElemsPerParallelTask is the smallest number of cells worth handing
	// to one worker. Grids with fewer rows than this implies run sequentially.
	MinElemsPerParallelTask int
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		FeedRate:                0.014,
		KillRate:                0.054,
		DeltaT:                  1,
		DiffusionU:              0.1,
		DiffusionV:              0.05,
		MinElemsPerParallelTask: 1 << 16,
	}
}

// Validate returns an error wrapping ErrInvalidParams for every field
// outside its domain. Rates, diffusion coefficients and dt must be positive
// and finite.
func (p Params) Validate() error {
	var errs []error
	positive := func(name string, x float64) {
		if !(x > 0) || math.IsInf(x, 1) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParams, name, x))
		}
	}
	positive("feed rate", p.FeedRate)
	positive("kill rate", p.KillRate)
	positive("dt", p.DeltaT)
	positive("Du", p.DiffusionU)
	positive("Dv", p.DiffusionV)
	if p.MinElemsPerParallelTask < 1 {
		errs = append(errs, fmt.Errorf("%w: MinElemsPerParallelTask must be at least 1, got %d", ErrInvalidParams, p.MinElemsPerParallelTask))
	}
	return errors.Join(errs...)
}

// coeffs holds Params converted to the element type of a field.
type coeffs[T hwy.Floats] struct {
	du, dv       T
	feed         T
	feedPlusKill T
	dt           T
	corner, edge T // stencil weights
}

func newCoeffs[T hwy.Floats](p Params) coeffs[T] {
	return coeffs[T]{
		du:           T(p.DiffusionU),
		dv:           T(p.DiffusionV),
		feed:         T(p.FeedRate),
		feedPlusKill: T(p.FeedRate + p.KillRate),
		dt:           T(p.DeltaT),
		corner:       T(0.25),
		edge:         T(0.5),
	}
}

// vecCoeffs is coeffs broadcast to every lane of Vec.
type vecCoeffs[Vec any] struct {
	du, dv       Vec
	feed         Vec
	feedPlusKill Vec
	dt           Vec
	corner, edge Vec
	one          Vec
}

func broadcastCoeffs[T hwy.Floats, Vec hwy.Vector[T, Vec]](k coeffs[T]) vecCoeffs[Vec] {
	return vecCoeffs[Vec]{
		du:           hwy.Set[Vec](k.du),
		dv:           hwy.Set[Vec](k.dv),
		feed:         hwy.Set[Vec](k.feed),
		feedPlusKill: hwy.Set[Vec](k.feedPlusKill),
		dt:           hwy.Set[Vec](k.dt),
		corner:       hwy.Set[Vec](k.corner),
		edge:         hwy.Set[Vec](k.edge),
		one:          hwy.Set[Vec](T(1)),
	}
}
