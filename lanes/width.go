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

package lanes

import "unsafe"

// Width is a register-width tag that determines how many lanes a Vec
// carries. It is threaded through every generic signature as a type
// parameter, so the width is fixed at compile time per instantiation
// rather than by a package-wide setting.
//
// Callers needing a width other than the built-in tags can declare their
// own zero-size type with a Bits method.
type Width interface {
	// Bits returns the register width in bits (128 for W128, etc.)
	Bits() int
}

// W64 selects 64-bit vectors.
type W64 struct{}

// Bits returns 64.
func (W64) Bits() int { return 64 }

// W128 selects 128-bit vectors (SSE, NEON class).
type W128 struct{}

// Bits returns 128.
func (W128) Bits() int { return 128 }

// W256 selects 256-bit vectors (AVX2 class).
type W256 struct{}

// Bits returns 256.
func (W256) Bits() int { return 256 }

// W512 selects 512-bit vectors (AVX-512, SVE class).
type W512 struct{}

// Bits returns 512.
func (W512) Bits() int { return 512 }

// Default is the register width used when a caller has no reason to pick
// one: 128 bits.
type Default = W128

// Count returns the number of T lanes that fit in W bits:
//
//	W.Bits() / (8 * sizeof(T))
//
// The division truncates. A width that is not a multiple of T's bit size
// yields a vector narrower than the naive expectation (e.g. a 100-bit tag
// with a 32-bit scalar gives 3 lanes, not an error); choose widths that
// divide evenly.
//
// For example, with W256 (256 bits / 32 bytes):
//   - float32: 256/32 = 8 lanes
//   - float64: 256/64 = 4 lanes
//   - int32: 256/32 = 8 lanes
func Count[T Scalar, W Width]() int {
	var w W
	var zero T
	return w.Bits() / (8 * int(unsafe.Sizeof(zero)))
}
