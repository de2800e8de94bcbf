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

// Package stream broadcasts V snapshots of a running simulation to websocket
// clients for live viewing.
//
// Frames are binary messages:
//
//	offset 0   uint64  step
//	offset 8   uint32  rows
//	offset 12  uint32  cols
//	offset 16  float32 rows*cols cells, row-major
//
// All values are little-endian.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
)

const headerSize = 16

// ErrMalformedFrame is returned by DecodeFrame for truncated or inconsistent
// input.
var ErrMalformedFrame = errors.New("stream: malformed frame")

// Frame is a decoded snapshot.
type Frame struct {
	Step       uint64
	Rows, Cols int
	Data       []float32
}

// At returns cell (r, c).
func (f Frame) At(r, c int) float32 {
	return f.Data[r*f.Cols+c]
}

// EncodeFrame serializes the interior of m. Cells are narrowed to float32.
func EncodeFrame[T hwy.Floats](step uint64, m *grayscott.Matrix[T]) []byte {
	rows, cols := m.Rows(), m.Cols()
	buf := make([]byte, headerSize+4*rows*cols)
	binary.LittleEndian.PutUint64(buf[0:], step)
	binary.LittleEndian.PutUint32(buf[8:], uint32(rows))
	binary.LittleEndian.PutUint32(buf[12:], uint32(cols))

	off := headerSize
	for r := range rows {
		for _, x := range m.Row(r) {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(x)))
			off += 4
		}
	}
	return buf
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(b []byte) (Frame, error) {
	if len(b) < headerSize {
		return Frame{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrMalformedFrame, len(b), headerSize)
	}
	f := Frame{
		Step: binary.LittleEndian.Uint64(b[0:]),
		Rows: int(binary.LittleEndian.Uint32(b[8:])),
		Cols: int(binary.LittleEndian.Uint32(b[12:])),
	}
	n := f.Rows * f.Cols
	if want := headerSize + 4*n; len(b) != want {
		return Frame{}, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrMalformedFrame, f.Rows, f.Cols, want, len(b))
	}
	f.Data = make([]float32, n)
	for i := range f.Data {
		f.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[headerSize+4*i:]))
	}
	return f, nil
}
