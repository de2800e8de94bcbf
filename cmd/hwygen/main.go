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

// Command hwygen generates the fixed-width vector types of package hwy.
//
// Usage:
//
//	hwygen -output ../hwy -pkg hwy -types float32,float64 -targets fallback,avx2,avx512
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	output := flag.String("output", ".", "output directory")
	pkg := flag.String("pkg", "hwy", "package name of the generated files")
	types := flag.String("types", "float32,float64", "comma-separated element types")
	targets := flag.String("targets", "fallback,avx2,avx512", "comma-separated targets")
	flag.Parse()

	ts, err := ParseTargets(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hwygen: %v\n", err)
		os.Exit(2)
	}

	g := &Generator{
		Package:   *pkg,
		OutputDir: *output,
		ElemTypes: strings.Split(*types, ","),
		Targets:   ts,
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hwygen: %v\n", err)
		os.Exit(1)
	}
}
