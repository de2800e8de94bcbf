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

// laplacian returns the weighted sum of (neighbor - center) over the eight
// neighbors, accumulated in the same order as the scalar kernels.
func laplacian[Vec hwy.Arith[Vec]](ul, up, ur, left, right, dl, down, dr, center, corner, edge Vec) Vec {
	lap := hwy.Mul(corner, hwy.Sub(ul, center))
	lap = hwy.MulAdd(edge, hwy.Sub(up, center), lap)
	lap = hwy.MulAdd(corner, hwy.Sub(ur, center), lap)
	lap = hwy.MulAdd(edge, hwy.Sub(left, center), lap)
	lap = hwy.MulAdd(edge, hwy.Sub(right, center), lap)
	lap = hwy.MulAdd(corner, hwy.Sub(dl, center), lap)
	lap = hwy.MulAdd(edge, hwy.Sub(down, center), lap)
	return hwy.MulAdd(corner, hwy.Sub(dr, center), lap)
}

// reactVec is react on every lane.
func reactVec[Vec hwy.Arith[Vec]](u, v, lu, lv Vec, k vecCoeffs[Vec]) (Vec, Vec) {
	uv2 := hwy.Mul(hwy.Mul(u, v), v)
	du := hwy.Add(hwy.Sub(hwy.Mul(k.du, lu), uv2), hwy.Mul(k.feed, hwy.Sub(k.one, u)))
	dv := hwy.Sub(hwy.Add(hwy.Mul(k.dv, lv), uv2), hwy.Mul(k.feedPlusKill, v))
	return hwy.MulAdd(du, k.dt, u), hwy.MulAdd(dv, k.dt, v)
}

// stencilSIMD updates tile t of a row-major field one vector of adjacent
// columns at a time. Reads are confined to t.Input(): each input row is a
// window one column wider than the tile on both sides, and neighbors are
// loaded from it at offsets 0, 1 and 2. The zero halo stands in for
// out-of-domain cells. Columns that do not fill a whole vector go through
// haloCell.
func stencilSIMD[T hwy.Floats, Vec hwy.Vector[T, Vec]](src, dst *Field[T], t Tile, k coeffs[T]) {
	w := hwy.MaxLanes[Vec]()
	vk := broadcastCoeffs[T, Vec](k)
	in := t.Input()
	n := t.Cols.Len()

	for r := t.Rows.Start; r < t.Rows.End; r++ {
		uUp, uMid, uDown := src.U.window(r-1, in.Cols), src.U.window(r, in.Cols), src.U.window(r+1, in.Cols)
		vUp, vMid, vDown := src.V.window(r-1, in.Cols), src.V.window(r, in.Cols), src.V.window(r+1, in.Cols)
		outU, outV := dst.U.window(r, t.Cols), dst.V.window(r, t.Cols)

		j := 0
		for ; j+w <= n; j += w {
			u := hwy.Load[Vec](uMid[j+1:])
			v := hwy.Load[Vec](vMid[j+1:])
			lu := laplacian(
				hwy.Load[Vec](uUp[j:]), hwy.Load[Vec](uUp[j+1:]), hwy.Load[Vec](uUp[j+2:]),
				hwy.Load[Vec](uMid[j:]), hwy.Load[Vec](uMid[j+2:]),
				hwy.Load[Vec](uDown[j:]), hwy.Load[Vec](uDown[j+1:]), hwy.Load[Vec](uDown[j+2:]),
				u, vk.corner, vk.edge)
			lv := laplacian(
				hwy.Load[Vec](vUp[j:]), hwy.Load[Vec](vUp[j+1:]), hwy.Load[Vec](vUp[j+2:]),
				hwy.Load[Vec](vMid[j:]), hwy.Load[Vec](vMid[j+2:]),
				hwy.Load[Vec](vDown[j:]), hwy.Load[Vec](vDown[j+1:]), hwy.Load[Vec](vDown[j+2:]),
				v, vk.corner, vk.edge)
			nu, nv := reactVec(u, v, lu, lv, vk)
			hwy.Store(nu, outU[j:])
			hwy.Store(nv, outV[j:])
		}
		for ; j < n; j++ {
			haloCell(src, dst, r, t.Cols.Start+j, k)
		}
	}
}
