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

// Package topology reports the cache and core layout of the host CPU.
//
// It is the only place that probes hardware; the engine receives the
// result through grayscott.Config.
package topology

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/ajroetker/go-grayscott/grayscott"
)

// Info is a snapshot of the host CPU.
type Info struct {
	Brand         string
	Vendor        string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int

	// Cache sizes in bytes; -1 or 0 when unknown.
	L1D, L2, L3 int
	FMA         bool
	AVX2        bool
	AVX512      bool
	Features    []string
}

// Probe returns the host CPU as detected by cpuid.
func Probe() Info {
	return fromCPU(&cpuid.CPU)
}

func fromCPU(c *cpuid.CPUInfo) Info {
	return Info{
		Brand:         c.BrandName,
		Vendor:        c.VendorString,
		PhysicalCores: c.PhysicalCores,
		LogicalCores:  c.LogicalCores,
		CacheLine:     c.CacheLine,
		L1D:           c.Cache.L1D,
		L2:            c.Cache.L2,
		L3:            c.Cache.L3,
		FMA:           c.Supports(cpuid.FMA3),
		AVX2:          c.Supports(cpuid.AVX2),
		AVX512:        c.Supports(cpuid.AVX512F, cpuid.AVX512VL),
		Features:      c.FeatureSet(),
	}
}

// L1DataCacheBytes returns the L1 data cache size, or
// grayscott.DefaultL1DataCacheBytes when cpuid could not determine it.
func (i Info) L1DataCacheBytes() int {
	if i.L1D > 0 {
		return i.L1D
	}
	return grayscott.DefaultL1DataCacheBytes
}
