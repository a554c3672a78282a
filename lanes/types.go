// Package lanes provides fixed-width vector value types and elementwise
// operations, generated at compile time from a scalar element type and a
// register-width tag.
//
// A Vec[T, W] holds exactly as many T lanes as fit in W bits. The width is
// part of the type's generic signature, so two call sites naming the same
// (T, W) pair refer to the identical type, and different widths or element
// types never collide. Everything is a plain scalar loop underneath; any
// speedup comes from the compiler's auto-vectorizer, not from intrinsics.
//
// Basic usage:
//
//	import "github.com/lanemath/go-lanes/lanes"
//
//	a := lanes.Load[float32, lanes.W128]([]float32{1, 2, 3, 4})
//	b := lanes.Load[float32, lanes.W128]([]float32{10, 20, 30, 40})
//
//	sum := lanes.Add(a, b)       // [11 22 33 44]
//	dot := lanes.Dot(a, b)       // 300
package lanes

import "fmt"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is a constraint for all types that can be stored in vector lanes.
type Scalar interface {
	Floats | Integers
}

// Vec is a fixed-width vector of T lanes sized by the width tag W.
// It is a pure value type: operations copy it by value and return new
// vectors; nothing in this package mutates a Vec after construction.
//
// Vec instances should not be created directly; use Load, Set, or Zero,
// which always produce exactly Count[T, W]() lanes. The zero Vec has no
// lanes and is not a valid operand.
type Vec[T Scalar, W Width] struct {
	// lanes holds the vector elements in ascending index order.
	lanes []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T, W]) NumLanes() int {
	return len(v.lanes)
}

// At returns the element at lane i.
func (v Vec[T, W]) At(i int) T {
	return v.lanes[i]
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T, W]) Data() []T {
	return v.lanes
}

// Store writes the vector's lanes to a slice.
// This is the method form of the lanes.Store function.
func (v Vec[T, W]) Store(dst []T) {
	n := len(v.lanes)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.lanes[:n])
}

// String renders the vector like a plain slice, e.g. "[1 2 3 4]".
func (v Vec[T, W]) String() string {
	return fmt.Sprint(v.lanes)
}
