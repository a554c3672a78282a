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

package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lanemath/go-lanes/lanes"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical vector scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := message.NewPrinter(language.English)

			a := lanes.Load[float32, lanes.W128]([]float32{1, 2, 3, 4})
			b := lanes.Load[float32, lanes.W128]([]float32{10, 20, 30, 40})
			p.Fprintf(out, "float32 @ 128-bit (%d lanes)\n", a.NumLanes())
			p.Fprintf(out, "  %v + %v = %v\n", a, b, lanes.Add(a, b))
			p.Fprintf(out, "  %v * %v = %v\n", a, b, lanes.Mul(a, b))
			p.Fprintf(out, "  dot = %v\n", lanes.Dot(a, b))

			c := lanes.Load[float32, lanes.W256]([]float32{1, 2, 3, 4, 5, 6, 7, 8})
			ones := lanes.Set[float32, lanes.W256](1)
			p.Fprintf(out, "\nfloat32 @ 256-bit (%d lanes)\n", c.NumLanes())
			p.Fprintf(out, "  dot(%v, %v) = %v\n", c, ones, lanes.Dot(c, ones))

			ia := lanes.Set[int32, lanes.Default](5)
			ib := lanes.Set[int32, lanes.Default](2)
			p.Fprintf(out, "\nint32 @ 128-bit (%d lanes)\n", ia.NumLanes())
			p.Fprintf(out, "  %v / %v = %v (truncating division)\n", ia, ib, lanes.Div(ia, ib))

			wa := lanes.Set[int64, lanes.W512](1_000_000)
			wb := lanes.Set[int64, lanes.W512](3_000_000)
			p.Fprintf(out, "\nint64 @ 512-bit (%d lanes)\n", wa.NumLanes())
			p.Fprintf(out, "  dot = %d\n", lanes.Dot(wa, wb))

			return nil
		},
	}
}
