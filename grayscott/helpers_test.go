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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-grayscott/hwy"
)

// randomField returns a field with V uniform in [0, 0.5) and U = 1 - V.
func randomField[T hwy.Floats](rows, cols int, seed uint64) *Field[T] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f := NewZeroField[T](rows, cols)
	for r := range rows {
		u, v := f.U.Row(r), f.V.Row(r)
		for c := range cols {
			v[c] = T(rng.Float64() * 0.5)
			u[c] = 1 - v[c]
		}
	}
	return f
}

// requireSameData fails unless a and b are bit-for-bit equal.
func requireSameData[T hwy.Floats](t *testing.T, name string, want, got []T) {
	t.Helper()
	require.Len(t, got, len(want), name)
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("%s differs at %d: want %v, got %v", name, i, want[i], got[i])
		}
	}
}

func requireSameField[T hwy.Floats](t *testing.T, want, got *Field[T]) {
	t.Helper()
	requireSameData(t, "U", want.U.Data(), got.U.Data())
	requireSameData(t, "V", want.V.Data(), got.V.Data())
}

func requireFieldsClose[T hwy.Floats](t *testing.T, want, got *Field[T], opt cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want.U.Data(), got.U.Data(), opt); diff != "" {
		t.Fatalf("U mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.V.Data(), got.V.Data(), opt); diff != "" {
		t.Fatalf("V mismatch (-want +got):\n%s", diff)
	}
}

// requireHaloZero checks the padding ring of m.
func requireHaloZero[T hwy.Floats](t *testing.T, m *Matrix[T]) {
	t.Helper()
	last := m.Rows() + 1
	for r := 0; r <= last; r++ {
		row := m.PaddedRow(r)
		if r == 0 || r == last {
			for c, x := range row {
				require.Zerof(t, x, "halo (%d, %d)", r, c)
			}
			continue
		}
		require.Zerof(t, row[0], "halo (%d, 0)", r)
		require.Zerof(t, row[len(row)-1], "halo (%d, %d)", r, len(row)-1)
	}
}

// requireConfigPanic runs fn and checks that it panics with a *ConfigError
// wrapping target.
func requireConfigPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		var ce *ConfigError
		require.True(t, errors.As(err, &ce), "panic %v is not a *ConfigError", err)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
