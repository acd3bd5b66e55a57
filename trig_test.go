package mathplex

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

var realSamples = []float64{-2.5, -1, -0.3, 0, 0.5, 1, 3}

func TestTrigMatchesRealFunctions(t *testing.T) {
	for _, x := range realSamples {
		c := New(x, 0)
		if got := c.Sin(); !got.ApproxEqual(New(math.Sin(x), 0), tol) {
			t.Errorf("sin(%v) = %s, want %v", x, got.StringFixed(15), math.Sin(x))
		}
		if got := c.Cos(); !got.ApproxEqual(New(math.Cos(x), 0), tol) {
			t.Errorf("cos(%v) = %s, want %v", x, got.StringFixed(15), math.Cos(x))
		}
		got, err := c.Tan()
		if err != nil {
			t.Fatalf("tan(%v): %v", x, err)
		}
		if !got.ApproxEqual(New(math.Tan(x), 0), 1e-9) {
			t.Errorf("tan(%v) = %s, want %v", x, got.StringFixed(15), math.Tan(x))
		}
		got, err = c.Sec()
		if err != nil {
			t.Fatalf("sec(%v): %v", x, err)
		}
		if !got.ApproxEqual(New(1/math.Cos(x), 0), 1e-9) {
			t.Errorf("sec(%v) = %s", x, got.StringFixed(15))
		}
		got, err = c.Atan()
		if err != nil {
			t.Fatalf("atan(%v): %v", x, err)
		}
		if !got.ApproxEqual(New(math.Atan(x), 0), 1e-9) {
			t.Errorf("atan(%v) = %s, want %v", x, got.StringFixed(15), math.Atan(x))
		}
		if x == 0 {
			continue
		}
		got, err = c.Cot()
		if err != nil {
			t.Fatalf("cot(%v): %v", x, err)
		}
		if !got.ApproxEqual(New(1/math.Tan(x), 0), 1e-9) {
			t.Errorf("cot(%v) = %s", x, got.StringFixed(15))
		}
		got, err = c.Cosec()
		if err != nil {
			t.Fatalf("cosec(%v): %v", x, err)
		}
		if !got.ApproxEqual(New(1/math.Sin(x), 0), 1e-9) {
			t.Errorf("cosec(%v) = %s", x, got.StringFixed(15))
		}
	}
}

// acos is evaluated as -i·log(c + i·sqrt(1-c²)). The textbook form
// i·log(c - i·sqrt(1-c²)) agrees everywhere on [-1, 1] except at -1, where the
// principal log lands on -π and gives acos(-1) = -π. Implementations using that
// form differ from this one at that single point.
func TestInverseTrigReal(t *testing.T) {
	if got := New(-1, 0).Acos(); !got.ApproxEqual(Pi, 1e-12) {
		t.Errorf("acos(-1) = %s, want π", got.StringFixed(15))
	}
	for _, x := range []float64{-1, -0.5, 0, 0.25, 0.5, 1} {
		c := New(x, 0)
		if got := c.Asin(); !got.ApproxEqual(New(math.Asin(x), 0), 1e-9) {
			t.Errorf("asin(%v) = %s, want %v", x, got.StringFixed(15), math.Asin(x))
		}
		if got := c.Acos(); !got.ApproxEqual(New(math.Acos(x), 0), 1e-9) {
			t.Errorf("acos(%v) = %s, want %v", x, got.StringFixed(15), math.Acos(x))
		}
	}
}

func TestTrigComplex(t *testing.T) {
	for _, s := range []string{"1+2i", "-0.5+0.25i", "0.3-1.1i", "-1.5-0.75i"} {
		z := tp(s)
		zc := z.Complex128()
		if !equalBuiltin(z.Sin(), cmplx.Sin(zc), 1e-9) {
			t.Errorf("sin(%s) = %s, builtin %v", z, z.Sin().StringFixed(12), cmplx.Sin(zc))
		}
		if !equalBuiltin(z.Cos(), cmplx.Cos(zc), 1e-9) {
			t.Errorf("cos(%s) = %s, builtin %v", z, z.Cos().StringFixed(12), cmplx.Cos(zc))
		}
		tan, err := z.Tan()
		if err != nil || !equalBuiltin(tan, cmplx.Tan(zc), 1e-9) {
			t.Errorf("tan(%s) = %s (%v), builtin %v", z, tan.StringFixed(12), err, cmplx.Tan(zc))
		}
		atan, err := z.Atan()
		if err != nil || !equalBuiltin(atan, cmplx.Atan(zc), 1e-9) {
			t.Errorf("atan(%s) = %s (%v), builtin %v", z, atan.StringFixed(12), err, cmplx.Atan(zc))
		}
		if !equalBuiltin(z.Asin(), cmplx.Asin(zc), 1e-9) {
			t.Errorf("asin(%s) = %s, builtin %v", z, z.Asin().StringFixed(12), cmplx.Asin(zc))
		}
		if !equalBuiltin(z.Acos(), cmplx.Acos(zc), 1e-9) {
			t.Errorf("acos(%s) = %s, builtin %v", z, z.Acos().StringFixed(12), cmplx.Acos(zc))
		}
		// sin² + cos² = 1 holds off the real axis too
		if sum := z.Sin().Square().Add(z.Cos().Square()); !sum.ApproxEqual(One, 1e-9) {
			t.Errorf("sin²+cos² at %s = %s", z, sum.StringFixed(12))
		}
	}
}

func TestTrigPoles(t *testing.T) {
	if _, err := Zero.Cot(); !errors.Is(err, ErrDomain) {
		t.Errorf("cot(0): expected domain error, got %v", err)
	}
	if _, err := Zero.Cosec(); !errors.Is(err, ErrDomain) {
		t.Errorf("cosec(0): expected domain error, got %v", err)
	}
	if _, err := I.Atan(); !errors.Is(err, ErrDomain) {
		t.Errorf("atan(i): expected domain error, got %v", err)
	}
	if _, err := NegI.Atan(); !errors.Is(err, ErrDomain) {
		t.Errorf("atan(-i): expected domain error, got %v", err)
	}
	// cos(π/2) is not exactly zero in float64, so tan stays finite but huge
	got, err := New(math.Pi/2, 0).Tan()
	if err != nil {
		t.Fatalf("tan(π/2): %v", err)
	}
	if got.Abs() < 1e15 {
		t.Fatalf("tan(π/2) = %s, expected a huge value", got.StringScientific(5))
	}
}
