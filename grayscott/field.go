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
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-grayscott/hwy"
)

// Matrix is a rows×cols grid stored row-major with a one-cell halo on every
// side. Halo cells are zero and no kernel writes them.
type Matrix[T hwy.Floats] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero rows×cols matrix.
// Panics with a *ConfigError if either dimension is less than 1.
func NewMatrix[T hwy.Floats](rows, cols int) *Matrix[T] {
	if err := ValidateShape(rows, cols, 1); err != nil {
		configPanic("NewMatrix", err)
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, (rows+2)*(cols+2)),
	}
}

// Rows returns the number of logical rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of logical columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Stride returns the distance between padded rows, cols+2.
func (m *Matrix[T]) Stride() int { return m.cols + 2 }

// Data returns the padded backing slice, halo included.
func (m *Matrix[T]) Data() []T { return m.data }

// PaddedRow returns padded row r, r in [0, rows+1]. Row 0 and row rows+1
// are halo; logical row r-1 is at index r, with its columns at [1, cols].
func (m *Matrix[T]) PaddedRow(r int) []T {
	s := m.Stride()
	return m.data[r*s : (r+1)*s : (r+1)*s]
}

// window returns the cells of logical row r whose logical columns lie in
// cols. cols may reach one column into the halo on either side.
func (m *Matrix[T]) window(r int, cols Span) []T {
	return m.PaddedRow(r + 1)[cols.Start+1 : cols.End+1]
}

// Row returns the cols interior cells of logical row r.
func (m *Matrix[T]) Row(r int) []T {
	start := (r+1)*m.Stride() + 1
	return m.data[start : start+m.cols : start+m.cols]
}

// At returns the cell at logical (r, c).
func (m *Matrix[T]) At(r, c int) T {
	return m.data[(r+1)*m.Stride()+c+1]
}

// Set stores x at logical (r, c).
func (m *Matrix[T]) Set(r, c int, x T) {
	m.data[(r+1)*m.Stride()+c+1] = x
}

// Sum returns the sum of all interior cells, accumulated in float64.
func (m *Matrix[T]) Sum() float64 {
	return lo.SumBy(lo.Range(m.rows), func(r int) float64 {
		var s float64
		for _, x := range m.Row(r) {
			s += float64(x)
		}
		return s
	})
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// CopyFrom overwrites m with src. Panics with a *ConfigError if the shapes
// differ.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) {
	if m.rows != src.rows || m.cols != src.cols {
		configPanic("CopyFrom", shapeErrorf("%dx%d into %dx%d", src.rows, src.cols, m.rows, m.cols))
	}
	copy(m.data, src.data)
}

// Field holds the two species of the model on grids of the same shape.
type Field[T hwy.Floats] struct {
	U, V *Matrix[T]
}

// NewZeroField returns a field with both species zero.
func NewZeroField[T hwy.Floats](rows, cols int) *Field[T] {
	return &Field[T]{U: NewMatrix[T](rows, cols), V: NewMatrix[T](rows, cols)}
}

// NewField returns the seeded initial state: V is 1 on the centered block of
// rows and columns in [7n/16, 9n/16) and 0 elsewhere, and U = 1 - V.
func NewField[T hwy.Floats](rows, cols int) *Field[T] {
	f := NewZeroField[T](rows, cols)
	r0, r1 := 7*rows/16, 9*rows/16
	c0, c1 := 7*cols/16, 9*cols/16
	for r := range rows {
		u, v := f.U.Row(r), f.V.Row(r)
		for c := range cols {
			if r >= r0 && r < r1 && c >= c0 && c < c1 {
				v[c] = 1
			}
			u[c] = 1 - v[c]
		}
	}
	return f
}

// Rows returns the number of logical rows.
func (f *Field[T]) Rows() int { return f.U.rows }

// Cols returns the number of logical columns.
func (f *Field[T]) Cols() int { return f.U.cols }

// Clone returns a deep copy of f.
func (f *Field[T]) Clone() *Field[T] {
	return &Field[T]{U: f.U.Clone(), V: f.V.Clone()}
}
