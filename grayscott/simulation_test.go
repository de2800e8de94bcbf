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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/hwy/contrib/workerpool"
)

// variantConfigs lists one configuration per kernel for float32.
func variantConfigs() map[string]Config {
	return map[string]Config{
		"Scalar":     {Variant: VariantScalar},
		"SIMD4":      {Variant: VariantSIMD, Lanes: 4},
		"SIMD8":      {Variant: VariantSIMD, Lanes: 8},
		"SIMD16":     {Variant: VariantSIMD, Lanes: 16},
		"Lanes4":     {Variant: VariantLanes, Lanes: 4},
		"Lanes8":     {Variant: VariantLanes, Lanes: 8},
		"Lanes16":    {Variant: VariantLanes, Lanes: 16},
		"Unblocked":  {Variant: VariantSIMD, Lanes: 8, DisableBlocking: true},
		"TinyTiles":  {Variant: VariantSIMD, Lanes: 4, TileColumns: 4},
		"LaneTiles3": {Variant: VariantLanes, Lanes: 4, TileColumns: 3},
	}
}

// splitEven splits n layout rows into k bands whose sizes differ by at most
// one.
func splitEven(n, k int) []Span {
	k = min(max(k, 1), n)
	bands := make([]Span, 0, k)
	start := 0
	for i := range k {
		size := n / k
		if i < n%k {
			size++
		}
		bands = append(bands, Span{start, start + size})
		start += size
	}
	return bands
}

// stepWithBands advances sim by steps using a fixed band plan.
func stepWithBands[T hwy.Floats](sim *Simulation[T], bands []Span, steps int) {
	k := newCoeffs[T](DefaultParams())
	for range steps {
		sim.engine.step(sim.sched, bands, k)
	}
}

func TestSimulationShape(t *testing.T) {
	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			sim := New(NewField[float32](32, 48), cfg)
			defer sim.Close()
			sim.Run(3, DefaultParams())

			snap := sim.Snapshot()
			assert.Equal(t, 32, snap.Rows())
			assert.Equal(t, 48, snap.Cols())
			assert.Equal(t, snap.U.Rows(), snap.V.Rows())
			assert.Equal(t, snap.U.Cols(), snap.V.Cols())
			assert.Equal(t, 32, sim.CurrentV().Rows())
			assert.Equal(t, 48, sim.CurrentV().Cols())
			assert.Equal(t, uint64(3), sim.Steps())
		})
	}
}

func TestBoundaryHaloStaysZero(t *testing.T) {
	for _, cfg := range []Config{
		{Variant: VariantScalar},
		{Variant: VariantSIMD, Lanes: 4},
		{Variant: VariantSIMD, Lanes: 8, TileColumns: 8},
	} {
		t.Run(cfg.Variant.String(), func(t *testing.T) {
			sim := New(randomField[float32](19, 29, 3), cfg)
			defer sim.Close()
			sim.Run(5, DefaultParams())

			e := sim.engine.(*rowMajorEngine[float32])
			for _, f := range []*Field[float32]{e.buf.Current(), e.buf.Next()} {
				requireHaloZero(t, f.U)
				requireHaloZero(t, f.V)
			}
		})
	}

	t.Run("lanes", func(t *testing.T) {
		sim := New(randomField[float32](16, 8, 3), Config{Variant: VariantLanes, Lanes: 4})
		defer sim.Close()
		sim.Run(5, DefaultParams())

		e := sim.engine.(*laneEngine[float32, hwy.Float32x4])
		for _, f := range []*LaneField[float32, hwy.Float32x4]{e.buf.Current(), e.buf.Next()} {
			for _, m := range []*LaneMatrix[float32, hwy.Float32x4]{f.U, f.V} {
				for i := range m.SuperRows() + 2 {
					row := m.SuperRow(i)
					require.Equal(t, hwy.Float32x4{}, row[0])
					require.Equal(t, hwy.Float32x4{}, row[len(row)-1])
				}
				// Lane 0 of the top wrap row and the last lane of the
				// bottom wrap row are the domain halo.
				for _, v := range m.SuperRow(0) {
					require.Zero(t, v.GetLane(0))
				}
				for _, v := range m.SuperRow(m.SuperRows() + 1) {
					require.Zero(t, v.GetLane(3))
				}
			}
		}
	})
}

func TestBandIndependence(t *testing.T) {
	const rows, cols, steps = 24, 20, 3
	init := randomField[float32](rows, cols, 11)

	pool := workerpool.New(4)
	defer pool.Close()

	for _, cfg := range []Config{
		{Variant: VariantScalar, Executor: pool},
		{Variant: VariantSIMD, Lanes: 8, Executor: pool},
		{Variant: VariantLanes, Lanes: 4, Executor: pool},
	} {
		t.Run(cfg.Variant.String(), func(t *testing.T) {
			ref := New(init, cfg)
			layoutRows := rows / ref.Lanes()
			stepWithBands(ref, splitEven(layoutRows, 1), steps)
			want := ref.Snapshot()

			for n := 2; n <= layoutRows; n++ {
				sim := New(init, cfg)
				stepWithBands(sim, splitEven(layoutRows, n), steps)
				requireSameField(t, want, sim.Snapshot())
			}
		})
	}
}

func TestCacheBlockIndependence(t *testing.T) {
	const rows, cols, steps = 16, 37, 4
	init32 := randomField[float32](rows, cols, 5)

	tests := []struct {
		name   string
		base   Config
		widths []int
	}{
		{"scalar", Config{Variant: VariantScalar, Workers: 1}, []int{1, 2, 7, 36}},
		{"simd", Config{Variant: VariantSIMD, Lanes: 4, Workers: 1}, []int{4, 8, 12, 36}},
		{"simd8", Config{Variant: VariantSIMD, Lanes: 8, Workers: 1}, []int{8, 16, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unblocked := tt.base
			unblocked.DisableBlocking = true
			ref := New(init32, unblocked)
			ref.Run(steps, DefaultParams())
			want := ref.Snapshot()

			for _, w := range tt.widths {
				cfg := tt.base
				cfg.TileColumns = w
				sim := New(init32, cfg)
				require.Equal(t, w, sim.TileWidth())
				sim.Run(steps, DefaultParams())
				requireSameField(t, want, sim.Snapshot())
			}
		})
	}

	t.Run("lanes", func(t *testing.T) {
		init := randomField[float64](16, 24, 5)
		ref := New(init, Config{Variant: VariantLanes, Lanes: 4, Workers: 1, DisableBlocking: true})
		ref.Run(steps, DefaultParams())
		want := ref.Snapshot()
		for _, w := range []int{1, 3, 5, 23} {
			sim := New(init, Config{Variant: VariantLanes, Lanes: 4, Workers: 1, TileColumns: w})
			sim.Run(steps, DefaultParams())
			requireSameField(t, want, sim.Snapshot())
		}
	})
}

func TestConservationScenario(t *testing.T) {
	p := DefaultParams()
	p.FeedRate, p.KillRate, p.DeltaT = 0.014, 0.054, 1.0

	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			init := NewField[float32](32, 32)
			total := init.U.Sum() + init.V.Sum()
			require.Equal(t, float64(32*32), total)

			sim := New(init, cfg)
			defer sim.Close()
			snap := sim.Snapshot()
			assert.Equal(t, total, snap.U.Sum()+snap.V.Sum())

			sim.Step(p)
			snap = sim.Snapshot()
			// Far from the seed block [14, 18) and the domain edge, the
			// stencil has not reached yet.
			for r := 2; r < 12; r++ {
				for c := 2; c < 12; c++ {
					require.Equalf(t, float32(1), snap.U.At(r, c), "U(%d, %d)", r, c)
					require.Equalf(t, float32(0), snap.V.At(r, c), "V(%d, %d)", r, c)
				}
			}
			// The seed itself reacts.
			assert.NotEqual(t, float32(1), snap.V.At(15, 15))
			// The domain edge loses mass through the zero halo.
			assert.Less(t, snap.U.At(0, 0), float32(1))
		})
	}
}

func TestDeterminismAcrossWorkers(t *testing.T) {
	for _, n := range []int{16, 256, 1024} {
		if n > 256 && testing.Short() {
			continue
		}
		p := DefaultParams()
		p.MinElemsPerParallelTask = max(n*n/64, 1)

		for _, variant := range []Variant{VariantSIMD, VariantLanes} {
			t.Run(fmt.Sprintf("%s/%d", variant, n), func(t *testing.T) {
				init := randomField[float32](n, n, uint64(n))
				steps := 3
				if n >= 1024 {
					steps = 2
				}

				one := New(init, Config{Variant: variant, Lanes: 8, Workers: 1})
				one.Run(steps, p)

				eight := New(init, Config{Variant: variant, Lanes: 8, Workers: 8})
				defer eight.Close()
				eight.Run(steps, p)

				require.Greater(t, len(eight.Bands(p.MinElemsPerParallelTask)), 1)
				requireSameField(t, one.Snapshot(), eight.Snapshot())
			})
		}
	}
}

func TestVariantAgreement(t *testing.T) {
	const steps = 20

	t.Run("float32", func(t *testing.T) {
		init := randomField[float32](64, 48, 21)
		ref := New(init, Config{Variant: VariantScalar, Workers: 1})
		ref.Run(steps, DefaultParams())
		want := ref.Snapshot()

		for name, cfg := range variantConfigs() {
			t.Run(name, func(t *testing.T) {
				sim := New(init, cfg)
				defer sim.Close()
				sim.Run(steps, DefaultParams())
				requireFieldsClose(t, want, sim.Snapshot(), cmpopts.EquateApprox(1e-4, 1e-5))
			})
		}
	})

	t.Run("float64", func(t *testing.T) {
		init := randomField[float64](32, 40, 22)
		ref := New(init, Config{Variant: VariantScalar, Workers: 1})
		ref.Run(steps, DefaultParams())
		want := ref.Snapshot()

		for _, lanes := range []int{2, 4, 8} {
			for _, variant := range []Variant{VariantSIMD, VariantLanes} {
				t.Run(fmt.Sprintf("%s%d", variant, lanes), func(t *testing.T) {
					sim := New(init, Config{Variant: variant, Lanes: lanes, Workers: 2})
					defer sim.Close()
					sim.Run(steps, DefaultParams())
					requireFieldsClose(t, want, sim.Snapshot(), cmpopts.EquateApprox(1e-10, 1e-12))
				})
			}
		}
	})
}

func TestCurrentVAndSnapshot(t *testing.T) {
	sim := New(NewField[float32](16, 16), Config{Variant: VariantLanes, Lanes: 4, Workers: 1})
	snap0 := sim.Snapshot()
	requireSameData(t, "initial V", snap0.V.Data(), sim.CurrentV().Data())

	sim.Step(DefaultParams())
	v1 := sim.CurrentV()
	assert.Same(t, v1, sim.CurrentV(), "CurrentV is cached between steps")
	requireSameData(t, "V after step", sim.Snapshot().V.Data(), v1.Data())

	// Snapshots are deep copies.
	snap := sim.Snapshot()
	snap.V.Set(0, 0, 42)
	assert.NotEqual(t, float32(42), sim.Snapshot().V.At(0, 0))
}

func TestVariantResolution(t *testing.T) {
	auto := New(NewField[float32](16, 16), Config{Lanes: 4, Workers: 1})
	notDivisible := New(NewField[float32](10, 16), Config{Lanes: 4, Workers: 1})
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		assert.Equal(t, VariantScalar, auto.Variant())
		assert.Equal(t, VariantScalar, notDivisible.Variant())
		return
	}
	assert.Equal(t, VariantLanes, auto.Variant())
	assert.Equal(t, 4, auto.Lanes())
	assert.Equal(t, VariantSIMD, notDivisible.Variant())
	assert.Equal(t, 1, notDivisible.Lanes())

	def := New(NewField[float64](64, 64), Config{Variant: VariantSIMD, Workers: 1})
	assert.Equal(t, VariantSIMD, def.Variant())
}

func TestConfigErrors(t *testing.T) {
	t.Run("LanesShape", func(t *testing.T) {
		requireConfigPanic(t, ErrInvalidShape, func() {
			New(NewField[float32](10, 8), Config{Variant: VariantLanes, Lanes: 4})
		})
	})
	t.Run("UnsupportedLanes", func(t *testing.T) {
		requireConfigPanic(t, ErrInvalidConfig, func() {
			New(NewField[float32](12, 12), Config{Variant: VariantSIMD, Lanes: 3})
		})
		requireConfigPanic(t, ErrInvalidConfig, func() {
			New(NewField[float64](16, 16), Config{Variant: VariantLanes, Lanes: 16})
		})
	})
	t.Run("StepParams", func(t *testing.T) {
		sim := New(NewField[float32](8, 8), Config{Variant: VariantScalar, Workers: 1})
		p := DefaultParams()
		p.DeltaT = 0
		requireConfigPanic(t, ErrInvalidParams, func() { sim.Step(p) })

		p = DefaultParams()
		p.MinElemsPerParallelTask = 0
		requireConfigPanic(t, ErrInvalidParams, func() { sim.Step(p) })
		assert.Zero(t, sim.Steps())
	})
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{VariantAuto, VariantScalar, VariantSIMD, VariantLanes} {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	var v Variant
	require.NoError(t, v.Set(" LANES "))
	assert.Equal(t, VariantLanes, v)
	assert.Equal(t, "variant", v.Type())

	_, err := ParseVariant("gpu")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "Variant(9)", Variant(9).String())
}

func TestBandPlanCache(t *testing.T) {
	sim := New(NewField[float32](64, 64), Config{Variant: VariantSIMD, Lanes: 4, Workers: 1})
	a := sim.Bands(64)
	assert.Len(t, a, 64)
	assert.Same(t, &a[0], &sim.Bands(64)[0])
	assert.Len(t, sim.Bands(64*64), 1)
}

func benchmarkStep(b *testing.B, n int, cfg Config) {
	sim := New(NewField[float32](n, n), cfg)
	defer sim.Close()
	p := DefaultParams()
	b.SetBytes(int64(n * n * 4 * 2))
	for b.Loop() {
		sim.Step(p)
	}
}

func BenchmarkStep(b *testing.B) {
	for _, n := range []int{256, 1024} {
		for _, v := range []Variant{VariantScalar, VariantSIMD, VariantLanes} {
			b.Run(fmt.Sprintf("%s/%d", v, n), func(b *testing.B) {
				benchmarkStep(b, n, Config{Variant: v})
			})
		}
		b.Run(fmt.Sprintf("simd-unblocked/%d", n), func(b *testing.B) {
			benchmarkStep(b, n, Config{Variant: VariantSIMD, DisableBlocking: true})
		})
	}
}
