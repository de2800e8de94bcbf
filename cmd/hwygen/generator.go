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
	"bytes"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator writes the vector types for each element type as three files:
// the types with their memory and lane ops, the lane-loop arithmetic used
// without GOEXPERIMENT=simd, and the amd64 arithmetic that forwards to
// simd/archsimd when the CPU supports the target.
type Generator struct {
	Package   string   // package clause of the generated files
	OutputDir string   // directory the files are written to
	ElemTypes []string // "float32", "float64"
	Targets   []Target
}

// fileKind selects which part of the vector types a file holds.
type fileKind int

const (
	kindTypes    fileKind = iota // types, memory ops, lane slides, lane loops
	kindFallback                 // arithmetic on lane loops
	kindSIMD                     // arithmetic on archsimd, gated per target
)

var fileKinds = []fileKind{kindTypes, kindFallback, kindSIMD}

// FileName returns the name of the kind file for elemType.
func (k fileKind) FileName(elemType string) string {
	switch k {
	case kindFallback:
		return "z_vec_" + elemType + "_fallback.go"
	case kindSIMD:
		return "z_vec_" + elemType + "_amd64_simd.go"
	default:
		return "z_vec_" + elemType + ".go"
	}
}

// vecType is the template input for a single vector type.
type vecType struct {
	Name   string
	Elem   string
	Lanes  int
	Bits   int
	Target string
	Gate   string // hwy variable enabling archsimd, "" for lane loops only
}

const header = `// Code generated by hwygen. DO NOT EDIT.
`

var typesTemplate = template.Must(template.New("types").Parse(header + `
package {{.Package}}
{{range .Types}}
// {{.Name}} is a vector of {{.Lanes}} {{.Elem}} lanes ({{.Bits}}-bit, {{.Target}}).
type {{.Name}} [{{.Lanes}}]{{.Elem}}

var _ Vector[{{.Elem}}, {{.Name}}] = {{.Name}}{}

// NumLanes returns {{.Lanes}}.
func ({{.Name}}) NumLanes() int { return {{.Lanes}} }

// Load returns the first {{.Lanes}} elements of src.
func ({{.Name}}) Load(src []{{.Elem}}) {{.Name}} {
	return {{.Name}}(*(*[{{.Lanes}}]{{.Elem}})(src))
}

// Store writes the lanes of v to the start of dst.
func (v {{.Name}}) Store(dst []{{.Elem}}) {
	*(*[{{.Lanes}}]{{.Elem}})(dst) = v
}

// Broadcast returns a vector with every lane set to x.
func ({{.Name}}) Broadcast(x {{.Elem}}) {{.Name}} {
	var r {{.Name}}
	for i := range r {
		r[i] = x
	}
	return r
}

// GetLane returns lane i.
func (v {{.Name}}) GetLane(i int) {{.Elem}} { return v[i] }

// SlideUpLanes moves lane i to lane i+n. Lanes below n become zero.
func (v {{.Name}}) SlideUpLanes(n int) {{.Name}} {
	var r {{.Name}}
	if n >= 0 && n < {{.Lanes}} {
		copy(r[n:], v[:{{.Lanes}}-n])
	}
	return r
}

// SlideDownLanes moves lane i+n to lane i. The top n lanes become zero.
func (v {{.Name}}) SlideDownLanes(n int) {{.Name}} {
	var r {{.Name}}
	if n >= 0 && n < {{.Lanes}} {
		copy(r[:{{.Lanes}}-n], v[n:])
	}
	return r
}

func (v {{.Name}}) addLanes(b {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] += b[i]
	}
	return v
}

func (v {{.Name}}) subLanes(b {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] -= b[i]
	}
	return v
}

func (v {{.Name}}) mulLanes(b {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] *= b[i]
	}
	return v
}

func (v {{.Name}}) mulAddLanes(b, c {{.Name}}) {{.Name}} {
	for i := range v {
		v[i] = v[i]*b[i] + c[i]
	}
	return v
}
{{end}}`))

var fallbackTemplate = template.Must(template.New("fallback").Parse(header + `
//go:build !amd64 || !goexperiment.simd

package {{.Package}}
{{range .Types}}
func (v {{.Name}}) Add(b {{.Name}}) {{.Name}} { return v.addLanes(b) }

func (v {{.Name}}) Sub(b {{.Name}}) {{.Name}} { return v.subLanes(b) }

func (v {{.Name}}) Mul(b {{.Name}}) {{.Name}} { return v.mulLanes(b) }

// MulAdd returns v*b + c.
func (v {{.Name}}) MulAdd(b, c {{.Name}}) {{.Name}} { return v.mulAddLanes(b, c) }
{{end}}`))

var simdTemplate = template.Must(template.New("simd").Parse(header + `
//go:build goexperiment.simd

package {{.Package}}

import "simd/archsimd"
{{range .Types}}{{if .Gate}}
func (v {{.Name}}) Add(b {{.Name}}) {{.Name}} {
	if !{{.Gate}} {
		return v.addLanes(b)
	}
	archsimd.Load{{.Name}}Slice(v[:]).Add(archsimd.Load{{.Name}}Slice(b[:])).StoreSlice(v[:])
	return v
}

func (v {{.Name}}) Sub(b {{.Name}}) {{.Name}} {
	if !{{.Gate}} {
		return v.subLanes(b)
	}
	archsimd.Load{{.Name}}Slice(v[:]).Sub(archsimd.Load{{.Name}}Slice(b[:])).StoreSlice(v[:])
	return v
}

func (v {{.Name}}) Mul(b {{.Name}}) {{.Name}} {
	if !{{.Gate}} {
		return v.mulLanes(b)
	}
	archsimd.Load{{.Name}}Slice(v[:]).Mul(archsimd.Load{{.Name}}Slice(b[:])).StoreSlice(v[:])
	return v
}

// MulAdd returns v*b + c, fused when {{.Gate}} is set.
func (v {{.Name}}) MulAdd(b, c {{.Name}}) {{.Name}} {
	if !{{.Gate}} {
		return v.mulAddLanes(b, c)
	}
	x, y, z := archsimd.Load{{.Name}}Slice(v[:]), archsimd.Load{{.Name}}Slice(b[:]), archsimd.Load{{.Name}}Slice(c[:])
	x.MulAdd(y, z).StoreSlice(v[:])
	return v
}
{{else}}
func (v {{.Name}}) Add(b {{.Name}}) {{.Name}} { return v.addLanes(b) }

func (v {{.Name}}) Sub(b {{.Name}}) {{.Name}} { return v.subLanes(b) }

func (v {{.Name}}) Mul(b {{.Name}}) {{.Name}} { return v.mulLanes(b) }

// MulAdd returns v*b + c.
func (v {{.Name}}) MulAdd(b, c {{.Name}}) {{.Name}} { return v.mulAddLanes(b, c) }
{{end}}{{end}}`))

func (k fileKind) template() *template.Template {
	switch k {
	case kindFallback:
		return fallbackTemplate
	case kindSIMD:
		return simdTemplate
	default:
		return typesTemplate
	}
}

// Types returns the vector types generated for elemType, narrowest first.
func (g *Generator) Types(elemType string) []vecType {
	targets := slices.Clone(g.Targets)
	slices.SortFunc(targets, func(a, b Target) int { return cmp.Compare(a.VecWidth, b.VecWidth) })

	types := make([]vecType, 0, len(targets))
	for _, t := range targets {
		types = append(types, vecType{
			Name:   t.TypeName(elemType),
			Elem:   elemType,
			Lanes:  t.LanesFor(elemType),
			Bits:   t.VecWidth * 8,
			Target: t.Name,
			Gate:   t.SIMDGate(),
		})
	}
	return types
}

// Render returns the formatted source of the kind file for elemType.
func (g *Generator) Render(elemType string, kind fileKind) ([]byte, error) {
	switch elemType {
	case "float32", "float64":
	default:
		return nil, fmt.Errorf("unsupported element type: %s (valid: float32, float64)", elemType)
	}

	var buf bytes.Buffer
	err := kind.template().Execute(&buf, struct {
		Package string
		Types   []vecType
	}{g.Package, g.Types(elemType)})
	if err != nil {
		return nil, fmt.Errorf("execute template for %s: %w", elemType, err)
	}

	name := kind.FileName(elemType)
	src, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return src, nil
}

// Run renders every element type and writes the files to OutputDir.
func (g *Generator) Run() error {
	if len(g.Targets) == 0 {
		return fmt.Errorf("no targets")
	}
	for _, elem := range g.ElemTypes {
		for _, kind := range fileKinds {
			src, err := g.Render(elem, kind)
			if err != nil {
				return err
			}
			path := filepath.Join(g.OutputDir, kind.FileName(elem))
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}
	return nil
}
