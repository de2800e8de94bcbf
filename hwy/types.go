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

// Package hwy provides fixed-width SIMD vector types with runtime CPU dispatch.
//
// Each vector type is a Go array of lanes (Float32x8 is [8]float32) with
// value-receiver methods, so a kernel written once against the Vector
// constraint is instantiated separately for every width. The width that
// matches the host is picked once at startup:
//
//	switch hwy.CurrentWidth() {
//	case 64:
//	    kernel[float32, hwy.Float32x16](...)
//	case 32:
//	    kernel[float32, hwy.Float32x8](...)
//	default:
//	    kernel[float32, hwy.Float32x4](...)
//	}
//
// Built with GOEXPERIMENT=simd on amd64, the arithmetic of the 256-bit types
// (Float32x8, Float64x4) runs on simd/archsimd AVX2 instructions and that of
// the 512-bit types (Float32x16, Float64x8) on AVX-512, each when the CPU
// reports the feature. Otherwise, and for the 128-bit types, it runs as
// per-lane loops. HWY_NO_SIMD=1 forces the loops.
//
// Kernels use the free functions in this package rather than the methods:
//
//	a := hwy.Load[hwy.Float32x8](src)
//	b := hwy.MulAdd(a, w, acc)
//	hwy.Store(b, dst)
package hwy

//go:generate go run ../cmd/hwygen -output . -pkg hwy -types float32,float64 -targets fallback,avx2,avx512

import "golang.org/x/exp/constraints"

// FloatsNative is a constraint for Go-native floating-point types.
type FloatsNative interface {
	constraints.Float
}

// Floats is the element constraint for all vector types in this package.
type Floats interface {
	FloatsNative
}

// Arith is the lane-wise arithmetic every vector type provides.
type Arith[V any] interface {
	Add(b V) V
	Sub(b V) V
	Mul(b V) V
	// MulAdd returns a*b + c.
	MulAdd(b, c V) V
}

// Vector is a fixed-width vector of T lanes whose concrete type is V.
//
// Load, Broadcast and NumLanes ignore their receiver; call them on the zero
// value or through the package-level helpers.
type Vector[T Floats, V any] interface {
	Arith[V]

	NumLanes() int
	Load(src []T) V
	Store(dst []T)
	Broadcast(x T) V
	GetLane(i int) T

	// SlideUpLanes moves lane i to lane i+n and zeroes lanes [0, n).
	SlideUpLanes(n int) V
	// SlideDownLanes moves lane i+n to lane i and zeroes the top n lanes.
	SlideDownLanes(n int) V
}
