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

// Command grayscott runs Gray-Scott reaction-diffusion simulations and
// reports how the engine is configured for the host.
//
// Usage:
//
//	grayscott run --rows 1024 --cols 1024 --steps 500
//	grayscott run --variant lanes --serve :8080 --publish-every 10
//	grayscott info --rows 1024 --cols 1024
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
