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

package topology

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-grayscott/grayscott"
)

func TestL1DataCacheBytesFallback(t *testing.T) {
	tests := []struct {
		name string
		l1d  int
		want int
	}{
		{"Unknown", -1, grayscott.DefaultL1DataCacheBytes},
		{"Zero", 0, grayscott.DefaultL1DataCacheBytes},
		{"Probed", 48 << 10, 48 << 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Info{L1D: tt.l1d}.L1DataCacheBytes())
		})
	}
}

func TestFromCPU(t *testing.T) {
	var c cpuid.CPUInfo
	c.BrandName = "Test CPU"
	c.LogicalCores = 8
	c.Cache.L1D = 32 << 10

	info := fromCPU(&c)
	assert.Equal(t, "Test CPU", info.Brand)
	assert.Equal(t, 8, info.LogicalCores)
	assert.Equal(t, 32<<10, info.L1DataCacheBytes())
	assert.False(t, info.AVX512)
}

func TestProbe(t *testing.T) {
	info := Probe()
	assert.Positive(t, info.L1DataCacheBytes())
	assert.GreaterOrEqual(t, info.LogicalCores, 0)
}
