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

import "github.com/ajroetker/go-grayscott/hwy"

// LaneMatrix is a rows×cols grid in the lane-interleaved layout for vectors
// of type Vec with W lanes.
//
// The grid is cut into W horizontal slabs of S = rows/W rows. Super-row i
// (1 <= i <= S) holds row i-1 of every slab: lane l of vector column c
// (1 <= c <= cols) is the scalar cell (i-1 + l*S, c-1). Vector columns 0 and
// cols+1 are a zero halo. Super-rows 0 and S+1 are wrap rows rebuilt by
// UpdateTopBottom, so that every stencil neighbor of a cell sits in the same
// lane of an adjacent vector.
type LaneMatrix[T hwy.Floats, Vec hwy.Vector[T, Vec]] struct {
	rows, cols int
	superRows  int
	data       []Vec
}

// NewLaneMatrix returns a zero rows×cols lane matrix.
// Panics with a *ConfigError if rows or cols is not a multiple of the lane
// count.
func NewLaneMatrix[T hwy.Floats, Vec hwy.Vector[T, Vec]](rows, cols int) *LaneMatrix[T, Vec] {
	w := hwy.MaxLanes[Vec]()
	if err := ValidateShape(rows, cols, w); err != nil {
		configPanic("NewLaneMatrix", err)
	}
	s := rows / w
	return &LaneMatrix[T, Vec]{
		rows:      rows,
		cols:      cols,
		superRows: s,
		data:      make([]Vec, (s+2)*(cols+2)),
	}
}

// Rows returns the number of scalar rows.
func (m *LaneMatrix[T, Vec]) Rows() int { return m.rows }

// Cols returns the number of scalar columns, which is also the number of
// interior vector columns.
func (m *LaneMatrix[T, Vec]) Cols() int { return m.cols }

// Lanes returns W.
func (m *LaneMatrix[T, Vec]) Lanes() int { return hwy.MaxLanes[Vec]() }

// SuperRows returns S, the number of interior super-rows.
func (m *LaneMatrix[T, Vec]) SuperRows() int { return m.superRows }

// Stride returns the number of vectors per super-row, cols+2.
func (m *LaneMatrix[T, Vec]) Stride() int { return m.cols + 2 }

// SuperRow returns super-row i, i in [0, S+1].
func (m *LaneMatrix[T, Vec]) SuperRow(i int) []Vec {
	s := m.Stride()
	return m.data[i*s : (i+1)*s : (i+1)*s]
}

// window returns the vectors of interior super-row i whose interior columns
// lie in cols. i may be -1 or S and cols may reach one column into the halo,
// which selects the wrap rows and halo columns.
func (m *LaneMatrix[T, Vec]) window(i int, cols Span) []Vec {
	return m.SuperRow(i + 1)[cols.Start+1 : cols.End+1]
}

// UpdateTopBottom rebuilds the wrap rows from the interior. Super-row 0
// becomes super-row S shifted up one lane, and super-row S+1 becomes
// super-row 1 shifted down one lane. The lane with no source is zero, which
// is the halo above the first and below the last scalar row.
func (m *LaneMatrix[T, Vec]) UpdateTopBottom() {
	top, first := m.SuperRow(0), m.SuperRow(1)
	last, bottom := m.SuperRow(m.superRows), m.SuperRow(m.superRows+1)
	for c := range top {
		top[c] = hwy.SlideUpLanes(last[c], 1)
		bottom[c] = hwy.SlideDownLanes(first[c], 1)
	}
}

// LaneField holds both species in the lane-interleaved layout.
type LaneField[T hwy.Floats, Vec hwy.Vector[T, Vec]] struct {
	U, V *LaneMatrix[T, Vec]
}

// NewLaneField returns a zero lane field.
func NewLaneField[T hwy.Floats, Vec hwy.Vector[T, Vec]](rows, cols int) *LaneField[T, Vec] {
	return &LaneField[T, Vec]{
		U: NewLaneMatrix[T, Vec](rows, cols),
		V: NewLaneMatrix[T, Vec](rows, cols),
	}
}

// Rows returns the number of scalar rows.
func (f *LaneField[T, Vec]) Rows() int { return f.U.rows }

// Cols returns the number of scalar columns.
func (f *LaneField[T, Vec]) Cols() int { return f.U.cols }

// UpdateTopBottom refreshes the wrap rows of both species.
func (f *LaneField[T, Vec]) UpdateTopBottom() {
	f.U.UpdateTopBottom()
	f.V.UpdateTopBottom()
}
