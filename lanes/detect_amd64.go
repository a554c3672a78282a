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

//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		preferredBits = 128
		preferredName = "scalar"
		return
	}

	switch {
	case cpu.X86.HasAVX512F:
		preferredBits = 512
		preferredName = "avx512"
	case cpu.X86.HasAVX2:
		preferredBits = 256
		preferredName = "avx2"
	default:
		// SSE2 is the x86-64 baseline.
		preferredBits = 128
		preferredName = "sse2"
	}
}
