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

// Package main prints what the stencil engine sees of the host: the SIMD
// dispatch decision, the instruction set flags behind it and the cache sizes
// that drive column tiling.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/internal/topology"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Dispatch name:  %s\n", hwy.CurrentName())
	fmt.Printf("FMA:            %v\n", hwy.HasFMA())
	fmt.Printf("%s set:     %v\n", hwy.NoSimdVar, hwy.NoSimdEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	info := topology.Probe()
	fmt.Println("=== github.com/klauspost/cpuid/v2 ===")
	fmt.Printf("  Brand:      %s (%s)\n", info.Brand, info.Vendor)
	fmt.Printf("  Cores:      %d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
	fmt.Printf("  CacheLine:  %d bytes\n", info.CacheLine)
	fmt.Printf("  L1d:        %d bytes\n", info.L1D)
	fmt.Printf("  L2:         %d bytes\n", info.L2)
	fmt.Printf("  L3:         %d bytes\n", info.L3)
	fmt.Println()

	l1 := info.L1DataCacheBytes()
	fmt.Printf("Tile width from %d-byte L1d:\n", l1)
	for _, elem := range []struct {
		name  string
		bytes int
	}{{"float32", 4}, {"float64", 8}} {
		w := hwy.LanesFor(hwy.CurrentWidth(), elem.bytes)
		fmt.Printf("  %-8s lanes=%-2d simd=%d cols  lanes-layout=%d super-cols\n", elem.name, w,
			grayscott.TileWidth(w, elem.bytes, l1),
			grayscott.TileWidth(1, elem.bytes*w, l1))
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
