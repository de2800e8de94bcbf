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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	_, logs, err := execute(t, "run", "--rows", "32", "--cols", "32", "--steps", "3",
		"--variant", "simd", "--lanes", "4", "--workers", "2", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"run complete"`)
	assert.Contains(t, logs, `"steps":3`)
	assert.Contains(t, logs, `"variant":"simd"`)
}

func TestRunCommandFloat64Lanes(t *testing.T) {
	_, logs, err := execute(t, "run", "--rows", "16", "--cols", "16", "--steps", "2",
		"--variant", "lanes", "--lanes", "4", "--precision", "float64", "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "run complete")
}

func TestRunCommandSpawnExecutor(t *testing.T) {
	_, logs, err := execute(t, "run", "--rows", "64", "--cols", "64", "--steps", "2",
		"--variant", "scalar", "--executor", "spawn", "--workers", "3", "--min-elems", "512")
	require.NoError(t, err)
	assert.Contains(t, logs, "bands=8")
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"BadVariant", []string{"run", "--variant", "gpu"}, "unknown variant"},
		{"BadPrecision", []string{"run", "--precision", "float16"}, "unknown precision"},
		{"BadShape", []string{"run", "--rows", "0"}, "invalid shape"},
		{"LanesShape", []string{"run", "--rows", "10", "--cols", "8", "--variant", "lanes", "--lanes", "4"}, "not a multiple"},
		{"BadParams", []string{"run", "--dt", "0"}, "invalid parameters"},
		{"BadExecutor", []string{"run", "--executor", "fork"}, "unknown executor"},
		{"BadLogFormat", []string{"run", "--log-format", "xml"}, "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(tt.args, "--steps", "1")...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInfoCommand(t *testing.T) {
	out, _, err := execute(t, "info", "--rows", "1024", "--cols", "1024", "--variant", "simd", "--lanes", "8", "--l1d", "32768")
	require.NoError(t, err)
	assert.Contains(t, out, "Variant:          simd")
	assert.Contains(t, out, "Tile width:       504 layout columns")
	assert.Contains(t, out, "Min rows/task:    64")
	assert.Contains(t, out, "Bands:            16")
}

func TestSummarize(t *testing.T) {
	st := summarize([]float64{4, 1, 3, 2})
	assert.InDelta(t, 2.5, st.mean, 1e-12)
	assert.Equal(t, float64(4), st.max)
	assert.Equal(t, float64(2), st.p50)
	assert.True(t, floats.EqualWithinAbs(st.stddev, 1.2909944487358056, 1e-12))

	assert.Equal(t, stepStats{}, summarize(nil))
}
