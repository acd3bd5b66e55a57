// Package mathplex provides an immutable double-precision complex number type for Go.
//
// Every operation is derived from a small primitive set (add, multiply, divide,
// polar conversion and the real exp/log), so the transcendental and trigonometric
// functions stay consistent with each other and reduce to their real counterparts
// on the real axis. Values parse from and format to the "a+bi" form.
//
// Multivalued functions (Pow, Sqrt, Log, Asin, Acos, Atan) return the principal
// branch only, selected through the principal angle in (-π, π].
//
// Minimal usage:
//
//	z := mathplex.MustParse("3+4i")
//	w := z.Mul(mathplex.I).Exp()
//	fmt.Println(w) // -0.0181+0.0026i
//
//	s, err := mathplex.Add("3+5i", 2.5) // operands may be Complex, numbers or strings
//
// SPDX-License-Identifier: MIT
package mathplex

import "math"

// Complex is an immutable complex number. Use New, Polar or Parse; the zero value is 0+0i.
type Complex struct {
	re, im float64
	mag    float64
	arg    float64
}

// Constants. Complex has value semantics, so no operation can change them.
var (
	Zero = New(0, 0)
	One  = New(1, 0)
	I    = New(0, 1)
	NegI = New(0, -1)
	Pi   = New(math.Pi, 0)
	E    = New(math.E, 0)
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im, mag: math.Hypot(re, im), arg: principalAngle(re, im)}
}

// Polar returns r·(cos θ + i·sin θ) (De Moivre).
func Polar(r, theta float64) Complex {
	return New(r*math.Cos(theta), r*math.Sin(theta))
}

// principalAngle is atan2 normalized into (-π, π], with 0 at the origin.
func principalAngle(re, im float64) float64 {
	if re == 0 && im == 0 {
		return 0
	}
	t := math.Atan2(im, re)
	if t <= -math.Pi {
		t = math.Pi
	}
	return t
}

func (c Complex) Real() float64 { return c.re }
func (c Complex) Imag() float64 { return c.im }

// Magnitude is the Euclidean norm sqrt(re²+im²).
func (c Complex) Magnitude() float64 { return c.mag }

// Angle is the principal argument in (-π, π].
func (c Complex) Angle() float64 { return c.arg }

func (c Complex) IsZero() bool { return c.re == 0 && c.im == 0 }

// Complex128 converts to Go's builtin complex type.
func (c Complex) Complex128() complex128 { return complex(c.re, c.im) }

// Equal reports exact component equality (so -0 equals 0 and NaN equals nothing).
func (c Complex) Equal(d Complex) bool { return c.re == d.re && c.im == d.im }

// ApproxEqual reports |re-d.re| <= tol and |im-d.im| <= tol.
func (c Complex) ApproxEqual(d Complex, tol float64) bool {
	return math.Abs(c.re-d.re) <= tol && math.Abs(c.im-d.im) <= tol
}
