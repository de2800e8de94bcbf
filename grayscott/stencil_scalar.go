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

// neighbors lists the eight stencil offsets in evaluation order. Every
// kernel accumulates the Laplacian in this order.
var neighbors = [8]struct {
	dr, dc int
	corner bool
}{
	{-1, -1, true}, {-1, 0, false}, {-1, 1, true},
	{0, -1, false}, {0, 1, false},
	{1, -1, true}, {1, 0, false}, {1, 1, true},
}

func (k coeffs[T]) weight(corner bool) T {
	if corner {
		return k.corner
	}
	return k.edge
}

// react applies the reaction terms to one cell given its Laplacians.
func react[T hwy.Floats](u, v, lu, lv T, k coeffs[T]) (T, T) {
	uv2 := u * v * v
	du := k.du*lu - uv2 + k.feed*(1-u)
	dv := k.dv*lv + uv2 - k.feedPlusKill*v
	return u + du*k.dt, v + dv*k.dt
}

// stencilScalar updates tile t one cell at a time. Reads are clamped to the
// domain: a neighbor outside it is not loaded and contributes w*(0-center).
func stencilScalar[T hwy.Floats](src, dst *Field[T], t Tile, k coeffs[T]) {
	rows, cols, stride := src.Rows(), src.Cols(), src.U.Stride()
	su, sv := src.U.data, src.V.data
	du, dv := dst.U.data, dst.V.data

	for r := t.Rows.Start; r < t.Rows.End; r++ {
		for c := t.Cols.Start; c < t.Cols.End; c++ {
			i := (r+1)*stride + c + 1
			u, v := su[i], sv[i]
			var lu, lv T
			for _, n := range neighbors {
				w := k.weight(n.corner)
				nr, nc := r+n.dr, c+n.dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					lu -= w * u
					lv -= w * v
					continue
				}
				j := i + n.dr*stride + n.dc
				lu += w * (su[j] - u)
				lv += w * (sv[j] - v)
			}
			du[i], dv[i] = react(u, v, lu, lv, k)
		}
	}
}

// haloCell updates logical cell (r, c) reading the zero halo directly.
func haloCell[T hwy.Floats](src, dst *Field[T], r, c int, k coeffs[T]) {
	stride := src.U.Stride()
	su, sv := src.U.data, src.V.data
	i := (r+1)*stride + c + 1
	u, v := su[i], sv[i]
	var lu, lv T
	for _, n := range neighbors {
		w := k.weight(n.corner)
		j := i + n.dr*stride + n.dc
		lu += w * (su[j] - u)
		lv += w * (sv[j] - v)
	}
	dst.U.data[i], dst.V.data[i] = react(u, v, lu, lv, k)
}
