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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/hwy/contrib/workerpool"
	"github.com/ajroetker/go-grayscott/internal/topology"
)

type rootOptions struct {
	logFormat string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "grayscott",
		Short:        "Gray-Scott reaction-diffusion on a multi-core CPU",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newRunCmd(opts), newInfoCmd(opts))
	return cmd
}

// logger builds the slog.Logger for a command writing to w.
func (o *rootOptions) logger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch o.logFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: text, json)", o.logFormat)
	}
}

// gridOptions are the flags shared by run and info.
type gridOptions struct {
	rows, cols int
	precision  string
	executor   string
	cfg        grayscott.Config
	l1Override int
}

func addGridFlags(fs *pflag.FlagSet, g *gridOptions) {
	fs.IntVar(&g.rows, "rows", 512, "grid rows")
	fs.IntVar(&g.cols, "cols", 512, "grid columns")
	fs.StringVar(&g.precision, "precision", "float32", "element type: float32 or float64")
	fs.Var(&g.cfg.Variant, "variant", "kernel variant: auto, scalar, simd or lanes")
	fs.IntVar(&g.cfg.Lanes, "lanes", 0, "vector lanes (0 = widest the CPU supports)")
	fs.IntVar(&g.cfg.Workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&g.executor, "executor", "pool", "band executor: pool (persistent workers) or spawn (goroutines per step)")
	fs.IntVar(&g.l1Override, "l1d", 0, "L1 data cache bytes (0 = probe the CPU)")
	fs.BoolVar(&g.cfg.DisableBlocking, "no-blocking", false, "disable column tiling")
	fs.IntVar(&g.cfg.TileColumns, "tile-cols", 0, "force the tile width in layout columns")
}

func addParamFlags(fs *pflag.FlagSet, p *grayscott.Params) {
	*p = grayscott.DefaultParams()
	fs.Float64Var(&p.FeedRate, "feed", p.FeedRate, "feed rate F")
	fs.Float64Var(&p.KillRate, "kill", p.KillRate, "kill rate k")
	fs.Float64Var(&p.DeltaT, "dt", p.DeltaT, "time step")
	fs.Float64Var(&p.DiffusionU, "du", p.DiffusionU, "diffusion rate of U")
	fs.Float64Var(&p.DiffusionV, "dv", p.DiffusionV, "diffusion rate of V")
	fs.IntVar(&p.MinElemsPerParallelTask, "min-elems", p.MinElemsPerParallelTask, "minimum cells per parallel task")
}

// validate checks the flags that do not depend on the element type.
func (g *gridOptions) validate() error {
	switch g.precision {
	case "float32", "float64":
	default:
		return fmt.Errorf("unknown precision %q (valid: float32, float64)", g.precision)
	}
	switch g.executor {
	case "pool", "spawn":
	default:
		return fmt.Errorf("unknown executor %q (valid: pool, spawn)", g.executor)
	}
	if err := grayscott.ValidateShape(g.rows, g.cols, 1); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// config returns the engine configuration with the L1d size filled in from
// the flag or the topology probe.
func (g *gridOptions) config() grayscott.Config {
	cfg := g.cfg
	if g.executor == "spawn" {
		cfg.Executor = workerpool.NewSpawner(cfg.Workers)
	}
	cfg.L1DataCacheBytes = g.l1Override
	if cfg.L1DataCacheBytes <= 0 {
		cfg.L1DataCacheBytes = topology.Probe().L1DataCacheBytes()
	}
	return cfg
}

// newSimulation builds a seeded simulation, turning configuration panics
// into errors.
func newSimulation[T hwy.Floats](g *gridOptions) (sim *grayscott.Simulation[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			var ce *grayscott.ConfigError
			if e, ok := r.(error); ok && errors.As(e, &ce) {
				err = ce
				return
			}
			panic(r)
		}
	}()
	return grayscott.New(grayscott.NewField[T](g.rows, g.cols), g.config()), nil
}
