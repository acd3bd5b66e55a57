package mathplex

import "math"

// Algebraic ops (non-mutating; each returns a new value)

func (c Complex) Add(d Complex) Complex { return New(c.re+d.re, c.im+d.im) }
func (c Complex) Sub(d Complex) Complex { return New(c.re-d.re, c.im-d.im) }
func (c Complex) Mul(d Complex) Complex {
	return New(c.re*d.re-c.im*d.im, c.re*d.im+c.im*d.re)
}
func (c Complex) Neg() Complex  { return New(-c.re, -c.im) }
func (c Complex) Conj() Complex { return New(c.re, -c.im) }

// Div returns c/d. Both operands are multiplied by conj(d), so the denominator
// d·conj(d) = |d|² is real. d is first scaled by its largest component so |d|²
// cannot underflow or overflow. Dividing by Zero returns ErrDivisionByZero.
func (c Complex) Div(d Complex) (Complex, error) {
	if d.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return div(c, d), nil
}

// div is Div without the zero check; callers guarantee d != Zero.
func div(c, d Complex) Complex {
	s := math.Max(math.Abs(d.re), math.Abs(d.im))
	ds := New(d.re/s, d.im/s)
	m := ds.Conj()
	num := c.Mul(m)
	den := ds.Mul(m).re * s
	return New(num.re/den, num.im/den)
}

// Rounding and magnitude

// Abs returns the magnitude.
func (c Complex) Abs() float64 { return c.mag }

func (c Complex) Floor() Complex { return New(math.Floor(c.re), math.Floor(c.im)) }
func (c Complex) Ceil() Complex  { return New(math.Ceil(c.re), math.Ceil(c.im)) }

// Round rounds each part to the nearest integer, half away from zero like math.Round.
// Halves of negative numbers therefore round down: Round(-2.5) is -3, where
// JavaScript's Math.round gives -2.
func (c Complex) Round() Complex { return New(math.Round(c.re), math.Round(c.im)) }

func (c Complex) Square() Complex {
	return New(c.re*c.re-c.im*c.im, 2*c.re*c.im)
}
