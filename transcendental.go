package mathplex

import (
	"fmt"
	"math"
)

// Pow raises c to a real power on the principal branch:
// Polar(|c|^exponent, angle·exponent). Pow(1.0/n) yields one n-th root only.
// A negative power of Zero is a pole and returns ErrDomain.
func (c Complex) Pow(exponent float64) (Complex, error) {
	if c.IsZero() && exponent < 0 {
		return Zero, fmt.Errorf("%w: zero raised to %g", ErrDomain, exponent)
	}
	return c.pow(exponent), nil
}

func (c Complex) pow(exponent float64) Complex {
	return Polar(math.Pow(c.mag, exponent), c.arg*exponent)
}

// Sqrt is the principal square root.
func (c Complex) Sqrt() Complex { return c.pow(0.5) }

// Exp returns e^c. Real arguments go through a real power of E so both paths agree
// on the real axis.
func (c Complex) Exp() Complex {
	if c.im == 0 {
		return E.pow(c.re)
	}
	return Polar(math.Exp(c.re), c.im)
}

// Log is the principal natural logarithm (ln|c|, angle). The branch cut lies on the
// negative real axis; Log(Zero) has real part -Inf.
func (c Complex) Log() Complex { return New(math.Log(c.mag), c.arg) }
