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
	"github.com/samber/lo"
)

const (
	// DefaultL1DataCacheBytes is used when no L1d size is configured.
	// Assumes 32KB L1d.
	DefaultL1DataCacheBytes = 32 << 10

	// BlockingSafetyFactor scales the computed tile width to leave room in
	// L1 for everything the model of the working set ignores.
	BlockingSafetyFactor = 0.5
)

// Span is the half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns End - Start.
func (s Span) Len() int { return s.End - s.Start }

// Tile is the output region of one kernel call, in layout rows and layout
// columns of the interior (0-based, halo excluded).
type Tile struct {
	Rows, Cols Span
}

// Input returns the region the stencil reads to produce t: one row and
// column wider on every side. The kernels slice their source rows to it.
func (t Tile) Input() Tile {
	return Tile{
		Rows: Span{t.Rows.Start - 1, t.Rows.End + 1},
		Cols: Span{t.Cols.Start - 1, t.Cols.End + 1},
	}
}

// TileWidth returns how many columns of elemBytes-sized elements one tile
// may span so that its working set fits in l1Bytes of L1 data cache.
//
// A tile of width C reads three input rows of C+2 columns and writes one
// output row of C columns, for each of the two species. With vectors of w
// lanes that is bounded by 8C + 12w elements, so
//
//	C = (l1Bytes/elemBytes - 12w) / 8
//
// scaled by BlockingSafetyFactor and rounded down to a multiple of w. The
// result is never less than w.
func TileWidth(w, elemBytes, l1Bytes int) int {
	w = max(w, 1)
	if elemBytes < 1 {
		return w
	}
	budget := l1Bytes/elemBytes - 12*w
	if budget <= 0 {
		return w
	}
	c := int(float64(budget/8) * BlockingSafetyFactor)
	c -= c % w
	return max(c, w)
}

// Planner splits the columns of a layout into tiles of a fixed width.
// It is built once and shared read-only across workers.
type Planner struct {
	cols  int
	width int
	spans []Span
}

// NewPlanner returns a planner for cols layout columns and tiles of width
// columns. width <= 0 or width >= cols yields a single tile.
func NewPlanner(cols, width int) *Planner {
	if width <= 0 || width > cols {
		width = cols
	}
	return &Planner{
		cols:  cols,
		width: width,
		spans: lo.Map(lo.RangeWithSteps(0, cols, width), func(start, _ int) Span {
			return Span{start, min(start+width, cols)}
		}),
	}
}

// Width returns the tile width in layout columns.
func (p *Planner) Width() int { return p.width }

// Columns returns the column spans, left to right.
func (p *Planner) Columns() []Span { return p.spans }

// ForEach calls fn for every tile covering rows, left to right.
func (p *Planner) ForEach(rows Span, fn func(Tile)) {
	for _, cols := range p.spans {
		fn(Tile{Rows: rows, Cols: cols})
	}
}
