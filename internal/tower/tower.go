// Package tower evaluates power towers b^b^...^1 and their continuous
// extension (tetration) over mathplex values.
//
// Definition used:
//
//	Let f(z) = b^z = exp(z·log b) on the principal branch. T_b(h) = f^{∘h}(1),
//	so for integer h this is the usual right-associated tower.
//
// Fractional heights use Koenigs/Schröder linearization at an attracting fixed
// point z* = b^{z*} with multiplier λ = f'(z*) = ln(b)·z*, |λ| < 1:
//
//	φ(z) = lim λ^{-n}(f^{∘n}(z) - z*),  f^{∘h}(z) = φ^{-1}(λ^h φ(z)).
//
// Outside the basin of attraction only integer heights are supported.
//
// SPDX-License-Identifier: MIT
package tower

import (
	"errors"
	"fmt"
	"math"

	"github.com/lukaszgryglicki/mathplex"
)

var (
	ErrNegativeHeight = errors.New("tower: negative height")
	ErrNotAttracting  = errors.New("tower: non-attracting regime; non-integer heights are not supported")
)

// Method names reported in Result.
const (
	MethodConstant  = "constant base=1"
	MethodSchroeder = "Schröder (Koenigs) fractional iteration"
	MethodInteger   = "integer tower"
)

// Options tunes the fixed-point search.
type Options struct {
	MaxIter   int
	Tolerance float64
}

// DefaultOptions suit float64 arithmetic.
func DefaultOptions() Options {
	return Options{MaxIter: 2000, Tolerance: 1e-14}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxIter <= 0 {
		o.MaxIter = d.MaxIter
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	return o
}

// Result is one tetration.
type Result struct {
	Value  mathplex.Complex
	Method string
	// Check is b^Value, which should match T_b(h+1).
	Check mathplex.Complex
}

// exponential is f(z) = b^z with log b cached.
type exponential struct {
	base mathplex.Complex
	lnb  mathplex.Complex
}

func newExponential(b mathplex.Complex) exponential {
	return exponential{base: b, lnb: b.Log()}
}

func (f exponential) apply(z mathplex.Complex) (mathplex.Complex, error) {
	if f.base.IsZero() {
		switch {
		case z.IsZero():
			return mathplex.One, nil
		case z.Real() > 0:
			return mathplex.Zero, nil
		}
		return mathplex.Zero, fmt.Errorf("%w: zero raised to %s", mathplex.ErrDomain, z)
	}
	return f.lnb.Mul(z).Exp(), nil
}

// Tower computes the right-associated tower of n copies of b, f^{∘n}(1).
// Tower(b, 0) is One.
func Tower(b mathplex.Complex, n int) (mathplex.Complex, error) {
	if n < 0 {
		return mathplex.Zero, fmt.Errorf("%w: %d", ErrNegativeHeight, n)
	}
	f := newExponential(b)
	x := mathplex.One
	for i := 0; i < n; i++ {
		var err error
		if x, err = f.apply(x); err != nil {
			return mathplex.Zero, err
		}
	}
	return x, nil
}

// FixedPoint looks for z* = b^{z*} with |λ| < 1. It iterates f from 1, then
// polishes with Newton on g(z) = z - b^z, starting from the iterate when the
// iteration settled and from 1 otherwise.
func FixedPoint(b mathplex.Complex, opts Options) (z, lambda mathplex.Complex, ok bool) {
	opts = opts.withDefaults()
	if b.IsZero() {
		return mathplex.Zero, mathplex.Zero, false
	}
	f := newExponential(b)

	z = mathplex.One
	u := mathplex.One
	for i := 0; i < opts.MaxIter; i++ {
		next, _ := f.apply(u)
		if !finite(next) || next.Magnitude() > 1e12 {
			break
		}
		if next.Sub(u).Magnitude() < opts.Tolerance {
			z = next
			break
		}
		u = next
	}

	converged := false
	for i := 0; i < 100; i++ {
		fz, _ := f.apply(z)
		step, err := z.Sub(fz).Div(mathplex.One.Sub(f.lnb.Mul(fz)))
		if err != nil || !finite(step) {
			break
		}
		z = z.Sub(step)
		if step.Magnitude() <= opts.Tolerance*(1+z.Magnitude()) {
			converged = true
			break
		}
	}
	if !converged {
		return mathplex.Zero, mathplex.Zero, false
	}
	lambda = f.lnb.Mul(z)
	if lambda.Magnitude() < 1 {
		return z, lambda, true
	}
	return mathplex.Zero, mathplex.Zero, false
}

// Tetrate computes T_b(h) for a real height h.
func Tetrate(b mathplex.Complex, h float64, opts Options) (Result, error) {
	if h < 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrNegativeHeight, h)
	}
	f := newExponential(b)
	finish := func(v mathplex.Complex, method string) (Result, error) {
		check, err := f.apply(v)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v, Method: method, Check: check}, nil
	}

	if b.ApproxEqual(mathplex.One, 1e-15) {
		return finish(mathplex.One, MethodConstant)
	}

	if zstar, lambda, ok := FixedPoint(b, opts); ok {
		if v, err := schroeder(f, zstar, lambda, h); err == nil {
			return finish(v, MethodSchroeder)
		}
	}

	if h == math.Trunc(h) && h <= math.MaxInt32 {
		v, err := Tower(b, int(h))
		if err != nil {
			return Result{}, err
		}
		return finish(v, MethodInteger)
	}
	return Result{}, ErrNotAttracting
}

// schroeder evaluates f^{∘h}(1) through the Koenigs map truncated at K steps.
func schroeder(f exponential, zstar, lambda mathplex.Complex, h float64) (mathplex.Complex, error) {
	lamAbs := lambda.Magnitude()
	if lamAbs == 0 || lamAbs >= 1 {
		return mathplex.Zero, ErrNotAttracting
	}
	// |λ|^K around 1e-8, half of the float64 digits
	k := int(math.Ceil(8 / -math.Log10(lamAbs)))
	k = min(max(k, 8), 2000)

	lnLam := lambda.Log()
	lamInvK := lnLam.Mul(mathplex.FromReal(-k)).Exp()

	phi := func(z mathplex.Complex) (mathplex.Complex, mathplex.Complex) {
		u, der := z, mathplex.One
		for i := 0; i < k; i++ {
			v, _ := f.apply(u)
			der = der.Mul(f.lnb.Mul(v))
			u = v
		}
		return lamInvK.Mul(u.Sub(zstar)), lamInvK.Mul(der)
	}

	phi1, _ := phi(mathplex.One)
	y := lnLam.Mul(mathplex.FromReal(h)).Exp().Mul(phi1)

	// Newton on φ(w) = y from the first-order inverse near z*
	w := zstar.Add(y)
	for it := 0; it < 80; it++ {
		pw, dpw := phi(w)
		resid := pw.Sub(y)
		if resid.Magnitude() <= 1e-15*(1+y.Magnitude()) {
			break
		}
		step, err := resid.Div(dpw)
		if err != nil {
			return mathplex.Zero, err
		}
		w = w.Sub(step)
		if !finite(w) {
			return mathplex.Zero, ErrNotAttracting
		}
	}
	return w, nil
}

func finite(c mathplex.Complex) bool {
	return !math.IsNaN(c.Real()) && !math.IsNaN(c.Imag()) && !math.IsInf(c.Magnitude(), 0)
}
