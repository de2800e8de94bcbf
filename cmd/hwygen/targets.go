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

package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Target represents a vector width that gets its own set of types.
type Target struct {
	Name     string // "AVX2", "AVX512", "Fallback"
	VecWidth int    // 32 for AVX2, 64 for AVX512, 16 for fallback
}

// AVX2Target returns the target configuration for AVX2 (256-bit SIMD).
func AVX2Target() Target {
	return Target{Name: "AVX2", VecWidth: 32}
}

// AVX512Target returns the target configuration for AVX-512 (512-bit SIMD).
func AVX512Target() Target {
	return Target{Name: "AVX512", VecWidth: 64}
}

// FallbackTarget returns the 128-bit target used by SSE2, NEON and scalar mode.
func FallbackTarget() Target {
	return Target{Name: "Fallback", VecWidth: 16}
}

// GetTarget returns the target configuration for the given name.
func GetTarget(name string) (Target, error) {
	switch name {
	case "avx2":
		return AVX2Target(), nil
	case "avx512":
		return AVX512Target(), nil
	case "fallback":
		return FallbackTarget(), nil
	default:
		return Target{}, fmt.Errorf("unknown target: %s (valid: avx2, avx512, fallback)", name)
	}
}

// Suffix returns the filename suffix for this target (e.g., "_avx2").
func (t Target) Suffix() string {
	switch t.Name {
	case "AVX2":
		return "_avx2"
	case "AVX512":
		return "_avx512"
	case "Fallback":
		return "_fallback"
	default:
		return ""
	}
}

// SIMDGate returns the hwy variable that switches the vector types of this
// target to archsimd instructions, or "" for targets that always use lane
// loops.
func (t Target) SIMDGate() string {
	switch t.Name {
	case "AVX2":
		return "useAVX2"
	case "AVX512":
		return "useAVX512"
	default:
		return ""
	}
}

// LanesFor returns the number of lanes for the given element type.
func (t Target) LanesFor(elemType string) int {
	var elemSize int
	switch elemType {
	case "float32", "int32", "uint32":
		elemSize = 4
	case "float64", "int64", "uint64":
		elemSize = 8
	case "int16", "uint16":
		elemSize = 2
	case "int8", "uint8":
		elemSize = 1
	default:
		return 1
	}
	return t.VecWidth / elemSize
}

// TypeName returns the vector type name for elemType on this target,
// e.g. "Float32x8" for float32 on AVX2.
func (t Target) TypeName(elemType string) string {
	return fmt.Sprintf("%sx%d", cases.Title(language.English).String(elemType), t.LanesFor(elemType))
}

// ParseTargets parses a comma-separated target list.
func ParseTargets(list string) ([]Target, error) {
	var targets []Target
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		t, err := GetTarget(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets in %q", list)
	}
	return targets, nil
}
