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
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/lanemath/go-lanes/lanes"
)

// countRow holds one scalar type's lane counts at 64/128/256/512 bits.
// Generic instantiation needs concrete types, so the table is spelled out.
type countRow struct {
	scalar string
	counts []int
}

func countRows() []countRow {
	return []countRow{
		{"int8", []int{lanes.Count[int8, lanes.W64](), lanes.Count[int8, lanes.W128](), lanes.Count[int8, lanes.W256](), lanes.Count[int8, lanes.W512]()}},
		{"int16", []int{lanes.Count[int16, lanes.W64](), lanes.Count[int16, lanes.W128](), lanes.Count[int16, lanes.W256](), lanes.Count[int16, lanes.W512]()}},
		{"int32", []int{lanes.Count[int32, lanes.W64](), lanes.Count[int32, lanes.W128](), lanes.Count[int32, lanes.W256](), lanes.Count[int32, lanes.W512]()}},
		{"int64", []int{lanes.Count[int64, lanes.W64](), lanes.Count[int64, lanes.W128](), lanes.Count[int64, lanes.W256](), lanes.Count[int64, lanes.W512]()}},
		{"uint8", []int{lanes.Count[uint8, lanes.W64](), lanes.Count[uint8, lanes.W128](), lanes.Count[uint8, lanes.W256](), lanes.Count[uint8, lanes.W512]()}},
		{"uint16", []int{lanes.Count[uint16, lanes.W64](), lanes.Count[uint16, lanes.W128](), lanes.Count[uint16, lanes.W256](), lanes.Count[uint16, lanes.W512]()}},
		{"uint32", []int{lanes.Count[uint32, lanes.W64](), lanes.Count[uint32, lanes.W128](), lanes.Count[uint32, lanes.W256](), lanes.Count[uint32, lanes.W512]()}},
		{"uint64", []int{lanes.Count[uint64, lanes.W64](), lanes.Count[uint64, lanes.W128](), lanes.Count[uint64, lanes.W256](), lanes.Count[uint64, lanes.W512]()}},
		{"float32", []int{lanes.Count[float32, lanes.W64](), lanes.Count[float32, lanes.W128](), lanes.Count[float32, lanes.W256](), lanes.Count[float32, lanes.W512]()}},
		{"float64", []int{lanes.Count[float64, lanes.W64](), lanes.Count[float64, lanes.W128](), lanes.Count[float64, lanes.W256](), lanes.Count[float64, lanes.W512]()}},
	}
}

func newWidthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "widths",
		Short: "Print lane counts per scalar type and register width",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-8s %6s %6s %6s %6s\n", "scalar", "64", "128", "256", "512")
			for _, r := range countRows() {
				cells := lo.Map(r.counts, func(c int, _ int) string {
					return strconv.Itoa(c)
				})
				fmt.Fprintf(out, "%-8s %6s %6s %6s %6s\n", r.scalar, cells[0], cells[1], cells[2], cells[3])
			}

			fmt.Fprintf(out, "\nhost: %s (prefers %d-bit vectors)\n", lanes.PreferredName(), lanes.PreferredBits())
			return nil
		},
	}
}
