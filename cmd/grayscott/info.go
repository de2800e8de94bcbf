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
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
	"github.com/ajroetker/go-grayscott/internal/topology"
)

type infoOptions struct {
	grid     gridOptions
	minElems int
}

func newInfoCmd(root *rootOptions) *cobra.Command {
	opts := &infoOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level, cache topology and the plan for a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := root.logger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			if err := opts.grid.validate(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printHost(w, topology.Probe())
			if opts.grid.precision == "float64" {
				return printPlan[float64](w, opts)
			}
			return printPlan[float32](w, opts)
		},
	}
	fs := cmd.Flags()
	addGridFlags(fs, &opts.grid)
	fs.IntVar(&opts.minElems, "min-elems", grayscott.DefaultParams().MinElemsPerParallelTask, "minimum cells per parallel task")
	return cmd
}

func printHost(w io.Writer, info topology.Info) {
	fmt.Fprintf(w, "GOOS/GOARCH:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "GOMAXPROCS:       %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "CPU:              %s\n", info.Brand)
	fmt.Fprintf(w, "Cores:            %d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
	fmt.Fprintf(w, "L1d:              %d bytes\n", info.L1DataCacheBytes())
	fmt.Fprintf(w, "Dispatch:         %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Fprintln(w)
}

func printPlan[T hwy.Floats](w io.Writer, opts *infoOptions) error {
	sim, err := newSimulation[T](&opts.grid)
	if err != nil {
		return err
	}
	defer sim.Close()

	bands := sim.Bands(opts.minElems)
	sizes := make([]string, 0, min(len(bands), 8))
	for i, b := range bands {
		if i == 8 {
			sizes = append(sizes, "...")
			break
		}
		sizes = append(sizes, fmt.Sprint(b.Len()))
	}

	fmt.Fprintf(w, "Grid:             %dx%d %s\n", sim.Rows(), sim.Cols(), opts.grid.precision)
	fmt.Fprintf(w, "Variant:          %s\n", sim.Variant())
	fmt.Fprintf(w, "Layout lanes:     %d\n", sim.Lanes())
	fmt.Fprintf(w, "Tile width:       %d layout columns\n", sim.TileWidth())
	fmt.Fprintf(w, "Min rows/task:    %d\n", grayscott.MinRowsPerTask(opts.minElems, sim.Cols()))
	fmt.Fprintf(w, "Bands:            %d [%s]\n", len(bands), strings.Join(sizes, " "))
	return nil
}
