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

// DoubleBuffer holds the two states of a time-stepped field. One is current
// and readable, the other is the write target of the next step.
type DoubleBuffer[F any] struct {
	fields  [2]F
	flipped bool
}

// NewDoubleBuffer returns a buffer whose current state is current.
func NewDoubleBuffer[F any](current, next F) *DoubleBuffer[F] {
	return &DoubleBuffer[F]{fields: [2]F{current, next}}
}

func (b *DoubleBuffer[F]) index() int {
	if b.flipped {
		return 1
	}
	return 0
}

// Current returns the readable state. It is valid until the next Step.
func (b *DoubleBuffer[F]) Current() F {
	return b.fields[b.index()]
}

// Next returns the state the next Step writes.
func (b *DoubleBuffer[F]) Next() F {
	return b.fields[1-b.index()]
}

// Step calls update(current, next) and then makes next current. update must
// write every interior cell of next.
func (b *DoubleBuffer[F]) Step(update func(src, dst F)) {
	update(b.Current(), b.Next())
	b.flipped = !b.flipped
}
