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

func checkSameShape(op string, rows, cols, wantRows, wantCols int) {
	if rows != wantRows || cols != wantCols {
		configPanic(op, shapeErrorf("%dx%d does not match %dx%d", rows, cols, wantRows, wantCols))
	}
}

// PackLanes converts src into the lane-interleaved layout dst and refreshes
// the wrap rows. Panics with a *ConfigError if the shapes differ.
func PackLanes[T hwy.Floats, Vec hwy.Vector[T, Vec]](dst *LaneMatrix[T, Vec], src *Matrix[T]) {
	checkSameShape("PackLanes", src.rows, src.cols, dst.rows, dst.cols)
	w, s := dst.Lanes(), dst.superRows

	slabs := make([][]T, w)
	lane := make([]T, w)
	for i := 1; i <= s; i++ {
		for l := range slabs {
			slabs[l] = src.PaddedRow(i + l*s)
		}
		out := dst.SuperRow(i)
		for c := 1; c <= src.cols; c++ {
			for l, row := range slabs {
				lane[l] = row[c]
			}
			out[c] = hwy.Load[Vec](lane)
		}
	}
	dst.UpdateTopBottom()
}

// UnpackLanes converts the lane-interleaved src back into the row-major dst.
// Only interior cells of dst are written. Panics with a *ConfigError if the
// shapes differ.
func UnpackLanes[T hwy.Floats, Vec hwy.Vector[T, Vec]](dst *Matrix[T], src *LaneMatrix[T, Vec]) {
	checkSameShape("UnpackLanes", src.rows, src.cols, dst.rows, dst.cols)
	w, s := src.Lanes(), src.superRows

	slabs := make([][]T, w)
	lane := make([]T, w)
	for i := 1; i <= s; i++ {
		for l := range slabs {
			slabs[l] = dst.PaddedRow(i + l*s)
		}
		in := src.SuperRow(i)
		for c := 1; c <= dst.cols; c++ {
			hwy.Store(in[c], lane)
			for l, row := range slabs {
				row[c] = lane[l]
			}
		}
	}
}

// PackField packs both species of src into dst.
func PackField[T hwy.Floats, Vec hwy.Vector[T, Vec]](dst *LaneField[T, Vec], src *Field[T]) {
	PackLanes(dst.U, src.U)
	PackLanes(dst.V, src.V)
}

// UnpackField unpacks both species of src into dst.
func UnpackField[T hwy.Floats, Vec hwy.Vector[T, Vec]](dst *Field[T], src *LaneField[T, Vec]) {
	UnpackLanes(dst.U, src.U)
	UnpackLanes(dst.V, src.V)
}
