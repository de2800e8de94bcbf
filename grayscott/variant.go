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
	"strings"
)

// Variant selects the stencil implementation and memory layout.
type Variant int

const (
	// VariantAuto uses VariantLanes when the shape allows it and VariantSIMD
	// otherwise.
	VariantAuto Variant = iota
	VariantScalar
	VariantSIMD
	VariantLanes
)

var variantNames = map[Variant]string{
	VariantAuto:   "auto",
	VariantScalar: "scalar",
	VariantSIMD:   "simd",
	VariantLanes:  "lanes",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the Variant named s, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return VariantAuto, fmt.Errorf("%w: unknown variant %q (valid: auto, scalar, simd, lanes)", ErrInvalidConfig, s)
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string {
	return "variant"
}
