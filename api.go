package mathplex

import (
	"fmt"
	"math/rand/v2"
)

// Polymorphic convenience wrappers. Operands may be Complex, *Complex, any Go number,
// a builtin complex value or a string; see Transform.

func binary(a, b any, f func(x, y Complex) Complex) (Complex, error) {
	x, y, err := transform2(a, b)
	if err != nil {
		return Zero, err
	}
	return f(x, y), nil
}

func unary(a any, f func(Complex) Complex) (Complex, error) {
	x, err := Transform(a)
	if err != nil {
		return Zero, err
	}
	return f(x), nil
}

func unaryErr(a any, f func(Complex) (Complex, error)) (Complex, error) {
	x, err := Transform(a)
	if err != nil {
		return Zero, err
	}
	return f(x)
}

func Add(a, b any) (Complex, error) { return binary(a, b, Complex.Add) }
func Sub(a, b any) (Complex, error) { return binary(a, b, Complex.Sub) }
func Mul(a, b any) (Complex, error) { return binary(a, b, Complex.Mul) }
func Div(a, b any) (Complex, error) {
	x, y, err := transform2(a, b)
	if err != nil {
		return Zero, err
	}
	return x.Div(y)
}

// Pow coerces the exponent too; it must be real.
func Pow(a, exponent any) (Complex, error) {
	x, e, err := transform2(a, exponent)
	if err != nil {
		return Zero, err
	}
	if e.im != 0 {
		return Zero, fmt.Errorf("%w: exponent %s is not real", ErrInvalidArgument, e)
	}
	return x.Pow(e.re)
}

// Abs returns the magnitude of a.
func Abs(a any) (float64, error) {
	x, err := Transform(a)
	if err != nil {
		return 0, err
	}
	return x.Abs(), nil
}

func Neg(a any) (Complex, error)    { return unary(a, Complex.Neg) }
func Conj(a any) (Complex, error)   { return unary(a, Complex.Conj) }
func Floor(a any) (Complex, error)  { return unary(a, Complex.Floor) }
func Ceil(a any) (Complex, error)   { return unary(a, Complex.Ceil) }
func Round(a any) (Complex, error)  { return unary(a, Complex.Round) }
func Square(a any) (Complex, error) { return unary(a, Complex.Square) }
func Sqrt(a any) (Complex, error)   { return unary(a, Complex.Sqrt) }
func Log(a any) (Complex, error)    { return unary(a, Complex.Log) }
func Exp(a any) (Complex, error)    { return unary(a, Complex.Exp) }
func Sin(a any) (Complex, error)    { return unary(a, Complex.Sin) }
func Cos(a any) (Complex, error)    { return unary(a, Complex.Cos) }
func Asin(a any) (Complex, error)   { return unary(a, Complex.Asin) }
func Acos(a any) (Complex, error)   { return unary(a, Complex.Acos) }
func Tan(a any) (Complex, error)    { return unaryErr(a, Complex.Tan) }
func Cot(a any) (Complex, error)    { return unaryErr(a, Complex.Cot) }
func Sec(a any) (Complex, error)    { return unaryErr(a, Complex.Sec) }
func Cosec(a any) (Complex, error)  { return unaryErr(a, Complex.Cosec) }
func Atan(a any) (Complex, error)   { return unaryErr(a, Complex.Atan) }

// Min returns the operand with the smallest magnitude; ties keep the first one.
func Min(xs ...any) (Complex, error) {
	return extremum("min", xs, func(m, best float64) bool { return m < best })
}

// Max returns the operand with the largest magnitude; ties keep the first one.
func Max(xs ...any) (Complex, error) {
	return extremum("max", xs, func(m, best float64) bool { return m > best })
}

func extremum(name string, xs []any, better func(m, best float64) bool) (Complex, error) {
	if len(xs) == 0 {
		return Zero, fmt.Errorf("%w: %s of no operands", ErrInvalidArgument, name)
	}
	best, err := Transform(xs[0])
	if err != nil {
		return Zero, err
	}
	for _, x := range xs[1:] {
		c, err := Transform(x)
		if err != nil {
			return Zero, err
		}
		if better(c.mag, best.mag) {
			best = c
		}
	}
	return best, nil
}

// Random returns a value with both parts uniform in [0, 1). A nil r uses the global source.
func Random(r *rand.Rand) Complex {
	if r == nil {
		return New(rand.Float64(), rand.Float64())
	}
	return New(r.Float64(), r.Float64())
}
