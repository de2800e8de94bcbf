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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/internal/stream"
)

type runOptions struct {
	grid         gridOptions
	params       grayscott.Params
	steps        int
	serve        string
	publishEvery int
	writeTimeout time.Duration
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and report step timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := opts.grid.validate(); err != nil {
				return err
			}
			if err := opts.params.Validate(); err != nil {
				return fmt.Errorf("parameters: %w", err)
			}
			if opts.steps < 0 {
				return fmt.Errorf("steps must not be negative, got %d", opts.steps)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if opts.grid.precision == "float64" {
				return runSimulation[float64](ctx, opts, log)
			}
			return runSimulation[float32](ctx, opts, log)
		},
	}

	fs := cmd.Flags()
	addGridFlags(fs, &opts.grid)
	addParamFlags(fs, &opts.params)
	fs.IntVar(&opts.steps, "steps", 100, "number of time steps")
	fs.StringVar(&opts.serve, "serve", "", "serve live V frames over websocket at this address, e.g. :8080")
	fs.IntVar(&opts.publishEvery, "publish-every", 10, "steps between websocket frames")
	fs.DurationVar(&opts.writeTimeout, "write-timeout", stream.DefaultWriteTimeout, "drop a viewer whose frame write takes longer than this")
	return cmd
}

// stepStats summarizes per-step wall times in milliseconds.
type stepStats struct {
	mean, stddev, p50, p95, max float64
}

func summarize(ms []float64) stepStats {
	if len(ms) == 0 {
		return stepStats{}
	}
	sorted := slices.Clone(ms)
	slices.Sort(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	return stepStats{
		mean:   mean,
		stddev: std,
		p50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		p95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		max:    sorted[len(sorted)-1],
	}
}

func runSimulation[T hwy.Floats](ctx context.Context, opts *runOptions, log *slog.Logger) error {
	sim, err := newSimulation[T](&opts.grid)
	if err != nil {
		return err
	}
	defer sim.Close()

	log.Info("simulation configured",
		"rows", sim.Rows(), "cols", sim.Cols(),
		"precision", opts.grid.precision,
		"variant", sim.Variant().String(),
		"lanes", sim.Lanes(),
		"tile_width", sim.TileWidth(),
		"bands", len(sim.Bands(opts.params.MinElemsPerParallelTask)),
		"dispatch", hwy.CurrentName())

	var hub *stream.Hub
	if opts.serve != "" {
		hub = stream.NewHub(log, opts.writeTimeout)
		srv, err := serve(opts.serve, hub, log)
		if err != nil {
			return err
		}
		defer shutdown(srv, log)
		stream.Publish(hub, sim.Steps(), sim.CurrentV())
	}

	times := make([]float64, 0, opts.steps)
	for i := 0; i < opts.steps; i++ {
		if ctx.Err() != nil {
			log.Warn("interrupted", "completed_steps", i)
			break
		}
		start := time.Now()
		sim.Step(opts.params)
		times = append(times, float64(time.Since(start))/float64(time.Millisecond))

		if hub != nil && opts.publishEvery > 0 && sim.Steps()%uint64(opts.publishEvery) == 0 {
			stream.Publish(hub, sim.Steps(), sim.CurrentV())
		}
		log.Debug("step", "n", sim.Steps(), "ms", times[len(times)-1])
	}

	st := summarize(times)
	cells := float64(sim.Rows() * sim.Cols())
	var throughput float64
	if st.mean > 0 {
		throughput = cells / (st.mean / 1000)
	}
	snap := sim.Snapshot()
	log.Info("run complete",
		"steps", sim.Steps(),
		"mean_ms", st.mean, "stddev_ms", st.stddev,
		"p50_ms", st.p50, "p95_ms", st.p95, "max_ms", st.max,
		"cells_per_sec", throughput,
		"sum_u", snap.U.Sum(), "sum_v", snap.V.Sum())

	if hub != nil {
		stream.Publish(hub, sim.Steps(), sim.CurrentV())
		log.Info("serving final frame, interrupt to exit", "addr", opts.serve)
		<-ctx.Done()
	}
	return nil
}

func serve(addr string, hub *stream.Hub, log *slog.Logger) (*http.Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return nil, fmt.Errorf("serve %s: %w", addr, err)
	case <-time.After(100 * time.Millisecond):
	}
	log.Info("streaming V frames", "url", "ws://"+addr+"/ws")
	return srv, nil
}

func shutdown(srv *http.Server, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn("server shutdown", "err", err)
	}
}
