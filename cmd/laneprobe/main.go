// Copyright 2026 go-lanes Authors
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

// Command laneprobe inspects the lane geometry of the built-in scalar types
// across the fixed register widths, reports the host CPU's preferred width,
// and runs a small demonstration of the vector operations.
//
// Usage:
//
//	laneprobe widths   # lane-count table and host probe
//	laneprobe demo     # canonical add/mul/div/dot scenarios
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "laneprobe",
		Short:        "Inspect fixed-width vector geometry and run demo operations",
		SilenceUsage: true,
	}
	root.AddCommand(newWidthsCmd(), newDemoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
