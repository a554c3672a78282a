package lanes

// This file provides the constructors and elementwise operations. Everything
// is a plain ascending-index loop over the backing arrays; the loops are kept
// branch-free and bounds-friendly so the compiler's auto-vectorizer can do
// its work.

// Load creates a vector from the leading elements of src. If src is shorter
// than Count[T, W](), the remaining lanes are zero.
func Load[T Scalar, W Width](src []T) Vec[T, W] {
	data := make([]T, Count[T, W]())
	copy(data, src)
	return Vec[T, W]{lanes: data}
}

// Store writes a vector's lanes to a slice.
func Store[T Scalar, W Width](v Vec[T, W], dst []T) {
	v.Store(dst)
}

// Set creates a vector with all lanes set to the same value.
func Set[T Scalar, W Width](value T) Vec[T, W] {
	data := make([]T, Count[T, W]())
	for i := range data {
		data[i] = value
	}
	return Vec[T, W]{lanes: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Scalar, W Width]() Vec[T, W] {
	return Vec[T, W]{lanes: make([]T, Count[T, W]())}
}

// Add performs element-wise addition.
func Add[T Scalar, W Width](a, b Vec[T, W]) Vec[T, W] {
	n := len(a.lanes)
	if len(b.lanes) < n {
		n = len(b.lanes)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] + b.lanes[i]
	}
	return Vec[T, W]{lanes: result}
}

// Sub performs element-wise subtraction.
func Sub[T Scalar, W Width](a, b Vec[T, W]) Vec[T, W] {
	n := len(a.lanes)
	if len(b.lanes) < n {
		n = len(b.lanes)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] - b.lanes[i]
	}
	return Vec[T, W]{lanes: result}
}

// Mul performs element-wise multiplication.
func Mul[T Scalar, W Width](a, b Vec[T, W]) Vec[T, W] {
	n := len(a.lanes)
	if len(b.lanes) < n {
		n = len(b.lanes)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] * b.lanes[i]
	}
	return Vec[T, W]{lanes: result}
}

// Div performs element-wise division. Division by zero follows the scalar
// type's native semantics with no guard: ±Inf/NaN for floats, a run-time
// panic for integers.
func Div[T Scalar, W Width](a, b Vec[T, W]) Vec[T, W] {
	n := len(a.lanes)
	if len(b.lanes) < n {
		n = len(b.lanes)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.lanes[i] / b.lanes[i]
	}
	return Vec[T, W]{lanes: result}
}

// Apply applies op at each index of a and b, producing a new vector with
// result[i] = op(a[i], b[i]). It is the direct, call-site form of an
// elementwise binary operation; for a reusable named operation see
// Elementwise.
func Apply[T Scalar, W Width](a, b Vec[T, W], op func(T, T) T) Vec[T, W] {
	n := len(a.lanes)
	if len(b.lanes) < n {
		n = len(b.lanes)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = op(a.lanes[i], b.lanes[i])
	}
	return Vec[T, W]{lanes: result}
}

// Elementwise builds a binary elementwise operation from op. Binding the
// returned function to an identifier is the declaration step: the name, the
// scalar type and the width are all fixed by the binding, invoking an
// identifier that was never bound fails to compile, and binding the same
// identifier twice in one scope is a compile-time redeclaration error.
//
//	addF32 := lanes.Elementwise[float32, lanes.W128](func(x, y float32) float32 { return x + y })
//	c := addF32(a, b)
func Elementwise[T Scalar, W Width](op func(T, T) T) func(a, b Vec[T, W]) Vec[T, W] {
	return func(a, b Vec[T, W]) Vec[T, W] {
		return Apply(a, b, op)
	}
}
