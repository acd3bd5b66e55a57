package mathplex

import (
	"errors"
	"math"
	"testing"
)

func TestTransform(t *testing.T) {
	c := New(1, 2)
	tests := []struct {
		in   any
		want Complex
	}{
		{c, c},
		{&c, c},
		{"3-4i", New(3, -4)},
		{2.5, New(2.5, 0)},
		{float32(0.5), New(0.5, 0)},
		{7, New(7, 0)},
		{int8(-3), New(-3, 0)},
		{int64(1 << 40), New(1<<40, 0)},
		{uint(9), New(9, 0)},
		{uint16(65535), New(65535, 0)},
		{complex(1.5, -2), New(1.5, -2)},
		{complex64(complex(0.25, 4)), New(0.25, 4)},
	}
	for _, tt := range tests {
		got, err := Transform(tt.in)
		if err != nil {
			t.Errorf("Transform(%v) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Transform(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}

	var nilPtr *Complex
	for _, in := range []any{nil, nilPtr, struct{}{}, []float64{1, 2}, true} {
		if _, err := Transform(in); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Transform(%#v): expected ErrTypeMismatch, got %v", in, err)
		}
	}
	if _, err := Transform("x+yi"); !errors.Is(err, ErrParse) {
		t.Errorf("Transform of bad string: expected ErrParse, got %v", err)
	}
}

func TestPolymorphicAdd(t *testing.T) {
	got, err := Add("3+5i", "23-15i")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "26-10i" {
		t.Fatalf("Add(\"3+5i\", \"23-15i\") = %s", got)
	}
	got, err = Add(New(1, 1), 2)
	if err != nil || !got.Equal(New(3, 1)) {
		t.Fatalf("Add(Complex, int) = %s, %v", got, err)
	}
	if _, err := Add(struct{}{}, 1); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := Add(1, "???"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestPolymorphicBinary(t *testing.T) {
	if got, err := Sub("5+5i", 1.5); err != nil || !got.Equal(New(3.5, 5)) {
		t.Errorf("Sub = %s, %v", got, err)
	}
	if got, err := Mul("i", "i"); err != nil || !got.Equal(New(-1, 0)) {
		t.Errorf("Mul(i, i) = %s, %v", got, err)
	}
	if got, err := Div("4+2i", 2); err != nil || !got.Equal(New(2, 1)) {
		t.Errorf("Div = %s, %v", got, err)
	}
	if _, err := Div(1, "0"); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by \"0\": %v", err)
	}
	if got, err := Pow("-4", "0.5"); err != nil || !got.ApproxEqual(New(0, 2), tol) {
		t.Errorf("Pow(-4, 0.5) = %s, %v", got, err)
	}
	if got, err := Pow(New(2, 0), 10); err != nil || !got.ApproxEqual(New(1024, 0), 1e-9) {
		t.Errorf("Pow(2, 10) = %s, %v", got, err)
	}
	if _, err := Pow(2, "1+i"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Pow with complex exponent: %v", err)
	}
	if _, err := Pow(0, -2); !errors.Is(err, ErrDomain) {
		t.Errorf("Pow(0, -2): %v", err)
	}
}

func TestPolymorphicUnary(t *testing.T) {
	if got, err := Neg("1-2i"); err != nil || !got.Equal(New(-1, 2)) {
		t.Errorf("Neg = %s, %v", got, err)
	}
	if got, err := Conj("1-2i"); err != nil || !got.Equal(New(1, 2)) {
		t.Errorf("Conj = %s, %v", got, err)
	}
	if got, err := Abs("3+4i"); err != nil || got != 5 {
		t.Errorf("Abs = %v, %v", got, err)
	}
	if _, err := Abs(nil); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Abs(nil): %v", err)
	}
	if got, err := Floor(2.7); err != nil || !got.Equal(New(2, 0)) {
		t.Errorf("Floor = %s, %v", got, err)
	}
	if got, err := Ceil("0.2-0.2i"); err != nil || !got.Equal(New(1, 0)) {
		t.Errorf("Ceil = %s, %v", got, err)
	}
	if got, err := Round("1.5+2.49i"); err != nil || !got.Equal(New(2, 2)) {
		t.Errorf("Round = %s, %v", got, err)
	}
	if got, err := Square("1+i"); err != nil || !got.Equal(New(0, 2)) {
		t.Errorf("Square = %s, %v", got, err)
	}
	if got, err := Sqrt(-9); err != nil || !got.ApproxEqual(New(0, 3), tol) {
		t.Errorf("Sqrt = %s, %v", got, err)
	}
	if got, err := Log(math.E); err != nil || !got.ApproxEqual(One, tol) {
		t.Errorf("Log(e) = %s, %v", got, err)
	}
	if got, err := Exp("0+3.141592653589793i"); err != nil || !got.ApproxEqual(New(-1, 0), tol) {
		t.Errorf("Exp(iπ) = %s, %v", got, err)
	}
	if got, err := Sin(0.5); err != nil || !got.ApproxEqual(New(math.Sin(0.5), 0), tol) {
		t.Errorf("Sin = %s, %v", got, err)
	}
	if got, err := Cos(0.5); err != nil || !got.ApproxEqual(New(math.Cos(0.5), 0), tol) {
		t.Errorf("Cos = %s, %v", got, err)
	}
	if got, err := Asin(1); err != nil || !got.ApproxEqual(New(math.Pi/2, 0), 1e-9) {
		t.Errorf("Asin = %s, %v", got, err)
	}
	if got, err := Acos(-1); err != nil || !got.ApproxEqual(New(math.Pi, 0), 1e-9) {
		t.Errorf("Acos(-1) = %s, %v", got, err)
	}
	if got, err := Atan(1); err != nil || !got.ApproxEqual(New(math.Pi/4, 0), 1e-9) {
		t.Errorf("Atan = %s, %v", got, err)
	}
	if got, err := Tan(0.5); err != nil || !got.ApproxEqual(New(math.Tan(0.5), 0), 1e-9) {
		t.Errorf("Tan = %s, %v", got, err)
	}
	if got, err := Sec(0); err != nil || !got.ApproxEqual(One, tol) {
		t.Errorf("Sec(0) = %s, %v", got, err)
	}
	for name, f := range map[string]func(any) (Complex, error){"cot": Cot, "cosec": Cosec} {
		if _, err := f(0); !errors.Is(err, ErrDomain) {
			t.Errorf("%s(0): expected ErrDomain, got %v", name, err)
		}
	}
	if _, err := Atan("i"); !errors.Is(err, ErrDomain) {
		t.Errorf("Atan(i): expected ErrDomain, got %v", err)
	}
	if _, err := Sin([]int{1}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Sin(slice): %v", err)
	}
}

func TestMinMax(t *testing.T) {
	c1, c2, c3 := New(23, 5), New(12, 6), New(2, 33)
	got, err := Min(c1, c2, c3)
	if err != nil || !got.Equal(c2) {
		t.Fatalf("Min = %s, %v; want %s", got, err, c2)
	}
	got, err = Max(c1, c2, c3)
	if err != nil || !got.Equal(c3) {
		t.Fatalf("Max = %s, %v; want %s", got, err, c3)
	}
	// equal magnitudes: first operand wins
	a, b, c := New(3, 4), New(4, 3), New(0, 5)
	if got, _ := Min(a, b, c); !got.Equal(a) {
		t.Fatalf("Min tie = %s, want %s", got, a)
	}
	if got, _ := Max(b, a, c); !got.Equal(b) {
		t.Fatalf("Max tie = %s, want %s", got, b)
	}
	if got, err := Min("1+i", -0.5, 3); err != nil || !got.Equal(New(-0.5, 0)) {
		t.Fatalf("Min mixed = %s, %v", got, err)
	}
	if got, err := Max(7); err != nil || !got.Equal(New(7, 0)) {
		t.Fatalf("Max single = %s, %v", got, err)
	}
	if _, err := Min(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Min(): expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Max(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Max(): expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Max(1, struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Max(bad): expected ErrTypeMismatch, got %v", err)
	}
}
