package mathplex

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FromReal lifts a real number to (x, 0).
func FromReal[T constraints.Integer | constraints.Float](x T) Complex {
	return New(float64(x), 0)
}

// FromComplex128 converts a builtin complex value.
func FromComplex128[T constraints.Complex](z T) Complex {
	c := complex128(z)
	return New(real(c), imag(c))
}

// Transform coerces an operand into a Complex. It accepts Complex, *Complex, every Go
// integer and float kind, complex64/complex128, and strings (see Parse).
func Transform(x any) (Complex, error) {
	switch v := x.(type) {
	case Complex:
		return v, nil
	case *Complex:
		if v == nil {
			return Zero, fmt.Errorf("%w: nil *Complex", ErrTypeMismatch)
		}
		return *v, nil
	case string:
		return Parse(v)
	case float64:
		return FromReal(v), nil
	case float32:
		return FromReal(v), nil
	case int:
		return FromReal(v), nil
	case int8:
		return FromReal(v), nil
	case int16:
		return FromReal(v), nil
	case int32:
		return FromReal(v), nil
	case int64:
		return FromReal(v), nil
	case uint:
		return FromReal(v), nil
	case uint8:
		return FromReal(v), nil
	case uint16:
		return FromReal(v), nil
	case uint32:
		return FromReal(v), nil
	case uint64:
		return FromReal(v), nil
	case uintptr:
		return FromReal(v), nil
	case complex128:
		return FromComplex128(v), nil
	case complex64:
		return FromComplex128(v), nil
	}
	return Zero, fmt.Errorf("%w %T", ErrTypeMismatch, x)
}

// transform2 coerces both operands of a binary operation.
func transform2(a, b any) (Complex, Complex, error) {
	x, err := Transform(a)
	if err != nil {
		return Zero, Zero, err
	}
	y, err := Transform(b)
	if err != nil {
		return Zero, Zero, err
	}
	return x, y, nil
}
