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

// stencilLanes updates tile t of a lane field, with t.Rows in interior
// super-rows and t.Cols in interior vector columns. Every neighbor is a whole
// vector, so the kernel has no tail and no shuffles. Reads are confined to
// t.Input(), whose outer rows are the wrap rows at the top and bottom of the
// field; those must be current.
func stencilLanes[T hwy.Floats, Vec hwy.Vector[T, Vec]](src, dst *LaneField[T, Vec], t Tile, k vecCoeffs[Vec]) {
	in := t.Input()
	for i := t.Rows.Start; i < t.Rows.End; i++ {
		uUp, uMid, uDown := src.U.window(i-1, in.Cols), src.U.window(i, in.Cols), src.U.window(i+1, in.Cols)
		vUp, vMid, vDown := src.V.window(i-1, in.Cols), src.V.window(i, in.Cols), src.V.window(i+1, in.Cols)
		outU, outV := dst.U.window(i, t.Cols), dst.V.window(i, t.Cols)

		for j := range outU {
			u, v := uMid[j+1], vMid[j+1]
			lu := laplacian(
				uUp[j], uUp[j+1], uUp[j+2],
				uMid[j], uMid[j+2],
				uDown[j], uDown[j+1], uDown[j+2],
				u, k.corner, k.edge)
			lv := laplacian(
				vUp[j], vUp[j+1], vUp[j+2],
				vMid[j], vMid[j+2],
				vDown[j], vDown[j+1], vDown[j+2],
				v, k.corner, k.edge)
			outU[j], outV[j] = reactVec(u, v, lu, lv, k)
		}
	}
}
