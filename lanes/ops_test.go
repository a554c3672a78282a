package lanes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	v := Load[float32, W128](data)

	if v.NumLanes() != 4 {
		t.Fatalf("Load: got %d lanes, want 4", v.NumLanes())
	}
	for i := range data {
		if v.At(i) != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.At(i), data[i])
		}
	}
}

func TestLoadShortSourceZeroFills(t *testing.T) {
	v := Load[float32, W128]([]float32{1, 2})

	want := []float32{1, 2, 0, 0}
	if diff := cmp.Diff(want, v.Data()); diff != "" {
		t.Errorf("Load short source mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLongSourceTruncates(t *testing.T) {
	v := Load[float32, W128]([]float32{1, 2, 3, 4, 5, 6})

	if v.NumLanes() != 4 {
		t.Errorf("Load long source: got %d lanes, want 4", v.NumLanes())
	}
}

func TestSet(t *testing.T) {
	v := Set[float32, W256](42.0)

	if v.NumLanes() != 8 {
		t.Fatalf("Set: got %d lanes, want 8", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.At(i) != 42.0 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.At(i))
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32, W128]()

	for i := 0; i < v.NumLanes(); i++ {
		if v.At(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.At(i))
		}
	}
}

func TestStore(t *testing.T) {
	v := Load[float32, W128]([]float32{1, 2, 3, 4})

	dst := make([]float32, 4)
	Store(v, dst)
	if diff := cmp.Diff([]float32{1, 2, 3, 4}, dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}

	// Method form, short destination.
	short := make([]float32, 2)
	v.Store(short)
	if diff := cmp.Diff([]float32{1, 2}, short); diff != "" {
		t.Errorf("Vec.Store short dst mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd(t *testing.T) {
	a := Load[float32, W128]([]float32{1, 2, 3, 4})
	b := Load[float32, W128]([]float32{10, 20, 30, 40})

	got := Add(a, b)
	if diff := cmp.Diff([]float32{11, 22, 33, 44}, got.Data()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestSub(t *testing.T) {
	a := Load[float32, W128]([]float32{10, 20, 30, 40})
	b := Load[float32, W128]([]float32{1, 2, 3, 4})

	got := Sub(a, b)
	if diff := cmp.Diff([]float32{9, 18, 27, 36}, got.Data()); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
}

func TestMul(t *testing.T) {
	a := Load[float32, W128]([]float32{1, 2, 3, 4})
	b := Load[float32, W128]([]float32{10, 20, 30, 40})

	got := Mul(a, b)
	if diff := cmp.Diff([]float32{10, 40, 90, 160}, got.Data()); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestDivFloat(t *testing.T) {
	a := Load[float32, W128]([]float32{10, 20, 30, 40})
	b := Load[float32, W128]([]float32{2, 4, 5, 8})

	got := Div(a, b)
	if diff := cmp.Diff([]float32{5, 5, 6, 5}, got.Data()); diff != "" {
		t.Errorf("Div mismatch (-want +got):\n%s", diff)
	}
}

func TestDivFloatByZero(t *testing.T) {
	a := Load[float32, W128]([]float32{1, -1, 0, 5})
	b := Zero[float32, W128]()

	got := Div(a, b)

	if !math.IsInf(float64(got.At(0)), 1) {
		t.Errorf("1/0: got %v, want +Inf", got.At(0))
	}
	if !math.IsInf(float64(got.At(1)), -1) {
		t.Errorf("-1/0: got %v, want -Inf", got.At(1))
	}
	if !math.IsNaN(float64(got.At(2))) {
		t.Errorf("0/0: got %v, want NaN", got.At(2))
	}
	if !math.IsInf(float64(got.At(3)), 1) {
		t.Errorf("5/0: got %v, want +Inf", got.At(3))
	}
}

func TestDivIntTruncates(t *testing.T) {
	a := Set[int32, W128](5)
	b := Set[int32, W128](2)

	got := Div(a, b)
	if diff := cmp.Diff([]int32{2, 2, 2, 2}, got.Data()); diff != "" {
		t.Errorf("integer Div mismatch (-want +got):\n%s", diff)
	}
}

func TestDivIntByZeroFaults(t *testing.T) {
	// Integer division by zero keeps Go's native behavior: a run-time
	// panic, with no guard added by the library.
	defer func() {
		if recover() == nil {
			t.Error("integer Div by zero: expected run-time panic")
		}
	}()

	a := Set[int32, W128](1)
	b := Zero[int32, W128]()
	_ = Div(a, b)
}

func TestApplyMatchesBuiltins(t *testing.T) {
	a := Load[float32, W128]([]float32{1, 2, 3, 4})
	b := Load[float32, W128]([]float32{10, 20, 30, 40})

	tests := []struct {
		name    string
		op      func(x, y float32) float32
		builtin Vec[float32, W128]
	}{
		{"add", func(x, y float32) float32 { return x + y }, Add(a, b)},
		{"sub", func(x, y float32) float32 { return x - y }, Sub(a, b)},
		{"mul", func(x, y float32) float32 { return x * y }, Mul(a, b)},
		{"div", func(x, y float32) float32 { return x / y }, Div(a, b)},
	}

	for _, tt := range tests {
		got := Apply(a, b, tt.op)
		if diff := cmp.Diff(tt.builtin.Data(), got.Data()); diff != "" {
			t.Errorf("Apply %s differs from built-in (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestElementwise(t *testing.T) {
	// Binding the generated function is the declaration; two bindings with
	// different names or types coexist without collision.
	maxF32 := Elementwise[float32, W128](func(x, y float32) float32 {
		if x > y {
			return x
		}
		return y
	})
	maxI32 := Elementwise[int32, W128](func(x, y int32) int32 {
		if x > y {
			return x
		}
		return y
	})

	a := Load[float32, W128]([]float32{1, 20, 3, 40})
	b := Load[float32, W128]([]float32{10, 2, 30, 4})
	if diff := cmp.Diff([]float32{10, 20, 30, 40}, maxF32(a, b).Data()); diff != "" {
		t.Errorf("maxF32 mismatch (-want +got):\n%s", diff)
	}

	ia := Load[int32, W128]([]int32{1, 5, 9, 2})
	ib := Load[int32, W128]([]int32{4, 3, 2, 8})
	if diff := cmp.Diff([]int32{4, 5, 9, 8}, maxI32(ia, ib).Data()); diff != "" {
		t.Errorf("maxI32 mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	a := Load[float32, W128]([]float32{1.5, -2.25, 3.75, 4.125})
	b := Load[float32, W128]([]float32{0.1, 0.2, 0.3, 0.4})

	first := Add(a, b)
	second := Add(a, b)
	for i := 0; i < first.NumLanes(); i++ {
		if math.Float32bits(first.At(i)) != math.Float32bits(second.At(i)) {
			t.Errorf("Add lane %d not bit-identical across invocations", i)
		}
	}

	if math.Float32bits(Dot(a, b)) != math.Float32bits(Dot(a, b)) {
		t.Error("Dot not bit-identical across invocations")
	}
}

func TestString(t *testing.T) {
	v := Load[int32, W128]([]int32{1, 2, 3, 4})
	if got := v.String(); got != "[1 2 3 4]" {
		t.Errorf("String: got %q, want %q", got, "[1 2 3 4]")
	}
}
