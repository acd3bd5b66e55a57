package mathplex

import "fmt"

// The trigonometric family is expressed through e^(ci) and e^(-ci) so that the real
// functions come out as the special case im == 0.

var two = New(2, 0)

// eci returns e^(ci) and e^(-ci).
func (c Complex) eci() (pos, neg Complex) {
	ci := c.Mul(I)
	return ci.Exp(), ci.Neg().Exp()
}

// pole builds the domain error for fn at c.
func pole(fn string, c Complex) error {
	return fmt.Errorf("%w: %s has a pole at %s", ErrDomain, fn, c)
}

// Sin: (e^(ci) - e^(-ci)) / 2i
func (c Complex) Sin() Complex {
	pos, neg := c.eci()
	return div(pos.Sub(neg), New(0, 2))
}

// Cos: (e^(ci) + e^(-ci)) / 2
func (c Complex) Cos() Complex {
	pos, neg := c.eci()
	return div(pos.Add(neg), two)
}

// Tan: (e^(ci) - e^(-ci)) / (i(e^(ci) + e^(-ci)))
func (c Complex) Tan() (Complex, error) {
	pos, neg := c.eci()
	den := pos.Add(neg).Mul(I)
	if den.IsZero() {
		return Zero, pole("tan", c)
	}
	return div(pos.Sub(neg), den), nil
}

// Cot: i(e^(ci) + e^(-ci)) / (e^(ci) - e^(-ci))
func (c Complex) Cot() (Complex, error) {
	pos, neg := c.eci()
	den := pos.Sub(neg)
	if den.IsZero() {
		return Zero, pole("cot", c)
	}
	return div(pos.Add(neg).Mul(I), den), nil
}

// Sec: 2 / (e^(ci) + e^(-ci))
func (c Complex) Sec() (Complex, error) {
	pos, neg := c.eci()
	den := pos.Add(neg)
	if den.IsZero() {
		return Zero, pole("sec", c)
	}
	return div(two, den), nil
}

// Cosec: 2i / (e^(ci) - e^(-ci))
func (c Complex) Cosec() (Complex, error) {
	pos, neg := c.eci()
	den := pos.Sub(neg)
	if den.IsZero() {
		return Zero, pole("cosec", c)
	}
	return div(New(0, 2), den), nil
}

// Atan: i·log((i+c)/(i-c)) / 2, undefined at ±i.
func (c Complex) Atan() (Complex, error) {
	num, den := I.Add(c), I.Sub(c)
	if num.IsZero() || den.IsZero() {
		return Zero, pole("atan", c)
	}
	return div(I.Mul(div(num, den).Log()), two), nil
}

// Asin: -i·log(ci + sqrt(1 - c²))
func (c Complex) Asin() Complex {
	return NegI.Mul(c.Mul(I).Add(One.Sub(c.Square()).Sqrt()).Log())
}

// Acos: i·log(c - i·sqrt(1 - c²)), evaluated as -i·log(c + i·sqrt(1 - c²)). The two
// log arguments are reciprocal, so the forms differ only on the log branch cut, where
// the second keeps the result in [0, π] (acos(-1) = π).
func (c Complex) Acos() Complex {
	return NegI.Mul(c.Add(I.Mul(One.Sub(c.Square()).Sqrt())).Log())
}
