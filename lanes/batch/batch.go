// Copyright 2026 The go-lanes Authors. SPDX-License-Identifier: Apache-2.0

package batch

import "github.com/lanemath/go-lanes/lanes"

// Apply maps op over the vector pairs (as[i], bs[i]) and returns the
// results. The output has length min(len(as), len(bs)). Pairs may be
// processed concurrently when p has more than one worker; each individual
// op call keeps the plain per-pair semantics.
func Apply[T lanes.Scalar, W lanes.Width](p *Pool, as, bs []lanes.Vec[T, W], op func(a, b lanes.Vec[T, W]) lanes.Vec[T, W]) []lanes.Vec[T, W] {
	n := min(len(as), len(bs))
	out := make([]lanes.Vec[T, W], n)
	p.parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = op(as[i], bs[i])
		}
	})
	return out
}

// Dots computes the dot product of each pair (as[i], bs[i]).
// For each i, the result is lanes.Dot(as[i], bs[i]): only the independent
// pairs run concurrently, never the lanes within one dot product, so each
// result keeps the ascending accumulation order.
func Dots[T lanes.Scalar, W lanes.Width](p *Pool, as, bs []lanes.Vec[T, W]) []T {
	n := min(len(as), len(bs))
	out := make([]T, n)
	p.parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = lanes.Dot(as[i], bs[i])
		}
	})
	return out
}

// Sums reduces each vector in vs to its lane sum.
func Sums[T lanes.Scalar, W lanes.Width](p *Pool, vs []lanes.Vec[T, W]) []T {
	out := make([]T, len(vs))
	p.parallelFor(len(vs), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = lanes.Sum(vs[i])
		}
	})
	return out
}
