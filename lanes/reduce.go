package lanes

// Reductions fold the lanes of one or more vectors into a single scalar.
// All of them start from a zero-valued accumulator and visit indices in
// strictly ascending order. The left-to-right order is part of the
// contract: for floating-point elements the result is order-sensitive,
// and callers may rely on it matching an explicit sequential fold.

// Reduce folds the supplied vectors into a scalar with a combining
// function. For each index i in [0, Count[T, W]()), in ascending order,
// the accumulator is replaced by combine(acc, i, vs...). The combining
// function may read any lane of any supplied vector, though the canonical
// use reads lane i.
//
//	dot := lanes.Reduce(func(acc float32, i int, vs ...lanes.Vec[float32, lanes.W128]) float32 {
//		return acc + vs[0].At(i)*vs[1].At(i)
//	}, a, b)
func Reduce[T Scalar, W Width](combine func(acc T, i int, vs ...Vec[T, W]) T, vs ...Vec[T, W]) T {
	var acc T
	n := Count[T, W]()
	for i := 0; i < n; i++ {
		acc = combine(acc, i, vs...)
	}
	return acc
}

// Fold is the lower-ceremony counterpart of Reduce: the per-step update is
// a closure over the accumulator and index, capturing whatever vectors it
// needs, rather than receiving them as arguments. Same iteration and
// accumulation contract as Reduce.
//
//	dot := lanes.Fold[float32, lanes.W128](func(acc float32, i int) float32 {
//		return acc + a.At(i)*b.At(i)
//	})
func Fold[T Scalar, W Width](step func(acc T, i int) T) T {
	var acc T
	n := Count[T, W]()
	for i := 0; i < n; i++ {
		acc = step(acc, i)
	}
	return acc
}

// Sum adds all lanes, ascending, from a zero accumulator.
func Sum[T Scalar, W Width](v Vec[T, W]) T {
	var acc T
	for i := 0; i < len(v.lanes); i++ {
		acc += v.lanes[i]
	}
	return acc
}

// Dot returns the dot product of a and b. It is defined as exactly
// Sum(Mul(a, b)) — elementwise multiply followed by an ascending sum — so
// the accumulation order is bit-for-bit identical to computing the sum
// reduction over the elementwise product yourself.
func Dot[T Scalar, W Width](a, b Vec[T, W]) T {
	return Sum(Mul(a, b))
}
