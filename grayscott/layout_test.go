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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-grayscott/hwy"
)

// indexMatrix returns a rows×cols matrix with cell (r, c) = r*cols + c + 1.
func indexMatrix[T hwy.Floats](rows, cols int) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	for r := range rows {
		for c := range cols {
			m.Set(r, c, T(r*cols+c+1))
		}
	}
	return m
}

func testRoundTrip[T hwy.Floats, Vec hwy.Vector[T, Vec]](t *testing.T, rows, cols int) {
	src := indexMatrix[T](rows, cols)
	lm := NewLaneMatrix[T, Vec](rows, cols)
	PackLanes(lm, src)

	dst := NewMatrix[T](rows, cols)
	UnpackLanes(dst, lm)
	requireSameData(t, "round trip", src.Data(), dst.Data())
}

func TestLayoutRoundTrip(t *testing.T) {
	t.Run("Float32x4", func(t *testing.T) { testRoundTrip[float32, hwy.Float32x4](t, 8, 12) })
	t.Run("Float32x8", func(t *testing.T) { testRoundTrip[float32, hwy.Float32x8](t, 64, 16) })
	t.Run("Float32x16", func(t *testing.T) { testRoundTrip[float32, hwy.Float32x16](t, 32, 32) })
	t.Run("Float64x2", func(t *testing.T) { testRoundTrip[float64, hwy.Float64x2](t, 6, 4) })
	t.Run("Float64x4", func(t *testing.T) { testRoundTrip[float64, hwy.Float64x4](t, 16, 8) })
	t.Run("Float64x8", func(t *testing.T) { testRoundTrip[float64, hwy.Float64x8](t, 8, 8) })
}

func TestPackLanesMapping(t *testing.T) {
	const rows, cols = 8, 4
	src := indexMatrix[float32](rows, cols)
	lm := NewLaneMatrix[float32, hwy.Float32x4](rows, cols)
	PackLanes(lm, src)

	require.Equal(t, 2, lm.SuperRows())
	require.Equal(t, 4, lm.Lanes())
	for i := 1; i <= lm.SuperRows(); i++ {
		row := lm.SuperRow(i)
		assert.Equal(t, hwy.Float32x4{}, row[0], "left halo")
		assert.Equal(t, hwy.Float32x4{}, row[cols+1], "right halo")
		for c := 1; c <= cols; c++ {
			for l := range 4 {
				assert.Equalf(t, src.At(i-1+l*2, c-1), row[c].GetLane(l), "super-row %d lane %d col %d", i, l, c)
			}
		}
	}
}

// TestUpdateTopBottom checks the wrap rows of a W=4, 8×8 lane matrix against
// the expected rotation with the edge lane zeroed.
func TestUpdateTopBottom(t *testing.T) {
	const n = 8
	src := indexMatrix[float32](n, n)
	lm := NewLaneMatrix[float32, hwy.Float32x4](n, n)
	PackLanes(lm, src)
	require.Equal(t, 2, lm.SuperRows())

	// Column 0: scalar rows 1, 3, 5 above lanes 1..3 and rows 2, 4, 6 below
	// lanes 0..2.
	assert.Equal(t, hwy.Float32x4{0, 9, 25, 41}, lm.SuperRow(0)[1])
	assert.Equal(t, hwy.Float32x4{17, 33, 49, 0}, lm.SuperRow(3)[1])

	// Corrupt the wrap rows and rebuild them.
	for c := range lm.Stride() {
		lm.SuperRow(0)[c] = hwy.Set[hwy.Float32x4](float32(-1))
		lm.SuperRow(3)[c] = hwy.Set[hwy.Float32x4](float32(-1))
	}
	lm.UpdateTopBottom()

	top, bottom := lm.SuperRow(0), lm.SuperRow(3)
	assert.Equal(t, hwy.Float32x4{}, top[0])
	assert.Equal(t, hwy.Float32x4{}, bottom[n+1])
	for c := 1; c <= n; c++ {
		var wantTop, wantBottom hwy.Float32x4
		for l := range 4 {
			if l > 0 {
				wantTop[l] = src.At(l*2-1, c-1)
			}
			if l < 3 {
				wantBottom[l] = src.At((l+1)*2, c-1)
			}
		}
		assert.Equalf(t, wantTop, top[c], "top column %d", c)
		assert.Equalf(t, wantBottom, bottom[c], "bottom column %d", c)
	}
}

func TestLaneMatrixInvalidShape(t *testing.T) {
	requireConfigPanic(t, ErrInvalidShape, func() { NewLaneMatrix[float32, hwy.Float32x8](12, 16) })
	requireConfigPanic(t, ErrInvalidShape, func() { NewLaneMatrix[float64, hwy.Float64x4](8, 6) })
}

func TestPackLanesShapeMismatch(t *testing.T) {
	lm := NewLaneMatrix[float32, hwy.Float32x4](8, 8)
	requireConfigPanic(t, ErrInvalidShape, func() { PackLanes(lm, NewMatrix[float32](8, 4)) })
	requireConfigPanic(t, ErrInvalidShape, func() { UnpackLanes(NewMatrix[float32](4, 8), lm) })
}

func TestPackFieldRoundTrip(t *testing.T) {
	f := randomField[float64](16, 12, 7)
	lf := NewLaneField[float64, hwy.Float64x4](16, 12)
	PackField(lf, f)
	got := NewZeroField[float64](16, 12)
	UnpackField(got, lf)
	requireSameField(t, f, got)
}
