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

// Package grayscott implements a Gray-Scott reaction-diffusion engine for a
// single multi-core CPU.
//
// Two species U and V live on a 2D grid stored with a one-cell zero halo.
// Every step applies a 3×3 diffusion stencil and the reaction terms to all
// cells, reading one buffer of a DoubleBuffer and writing the other.
//
// The update exists in three variants:
//
//   - VariantScalar: one cell at a time, reads clamped to the domain.
//   - VariantSIMD: row-major layout, one hwy vector of adjacent columns
//     at a time, with a scalar tail.
//   - VariantLanes: a lane-interleaved layout where every stencil neighbor is
//     a whole vector. Rows must be a multiple of the lane count.
//
// Each step is split into row bands that run on a workerpool.Executor, and
// each band is split into column tiles sized to fit the L1 data cache.
//
// Basic usage:
//
//	sim := grayscott.New(grayscott.NewField[float32](512, 512), grayscott.Config{})
//	defer sim.Close()
//	sim.Run(100, grayscott.DefaultParams())
//	v := sim.CurrentV()
//
// Configuration mistakes (bad shapes, invalid parameters) panic with a
// *ConfigError. Use ValidateShape and Params.Validate to check input first.
package grayscott
