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
	"fmt"
)

var (
	// ErrInvalidShape reports a grid shape the requested layout cannot hold.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidParams reports model parameters outside their domain.
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrInvalidConfig reports an engine configuration that cannot be built.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError is the value the engine panics with when it is misconfigured.
type ConfigError struct {
	Op  string // operation that detected the problem, e.g. "New"
	Err error  // wraps one of the Err* sentinels
}

func (e *ConfigError) Error() string {
	return "grayscott: " + e.Op + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configPanic(op string, err error) {
	panic(&ConfigError{Op: op, Err: err})
}

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidShape}, args...)...)
}

// ValidateShape reports whether a rows×cols grid is valid for a layout of
// the given lane width. lanes <= 1 means a row-major layout, which accepts any
// positive shape. The lane-interleaved layout requires both dimensions to be
// multiples of lanes.
func ValidateShape(rows, cols, lanes int) error {
	if rows < 1 || cols < 1 {
		return shapeErrorf("%dx%d grid must have at least one row and column", rows, cols)
	}
	if lanes > 1 && (rows%lanes != 0 || cols%lanes != 0) {
		return shapeErrorf("%dx%d grid is not a multiple of %d lanes", rows, cols, lanes)
	}
	return nil
}
