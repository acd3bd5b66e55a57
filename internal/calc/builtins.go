package calc

import (
	"fmt"

	"github.com/lukaszgryglicki/mathplex"
)

func unary(name, summary string, f func(any) (mathplex.Complex, error)) Op {
	return Op{Name: name, Summary: summary, MinArgs: 1, MaxArgs: 1,
		Apply: func(args ...any) (mathplex.Complex, error) { return f(args[0]) }}
}

func binary(name, summary string, f func(a, b any) (mathplex.Complex, error)) Op {
	return Op{Name: name, Summary: summary, MinArgs: 2, MaxArgs: 2,
		Apply: func(args ...any) (mathplex.Complex, error) { return f(args[0], args[1]) }}
}

func constant(name, summary string, c mathplex.Complex) Op {
	return Op{Name: name, Summary: summary,
		Apply: func(...any) (mathplex.Complex, error) { return c, nil }}
}

func builtins() []Op {
	return []Op{
		constant("e", "Euler's number", mathplex.E),
		constant("pi", "π", mathplex.Pi),
		constant("i", "imaginary unit", mathplex.I),

		binary("add", "a + b", mathplex.Add),
		binary("sub", "a - b", mathplex.Sub),
		binary("mul", "a · b", mathplex.Mul),
		binary("div", "a / b", mathplex.Div),
		binary("pow", "a raised to the real power b (principal branch)", mathplex.Pow),
		binary("root", "principal b-th root of a", root),
		{Name: "min", Summary: "operand with the smallest magnitude", MinArgs: 1, MaxArgs: Variadic, Apply: mathplex.Min},
		{Name: "max", Summary: "operand with the largest magnitude", MinArgs: 1, MaxArgs: Variadic, Apply: mathplex.Max},

		unary("neg", "-a", mathplex.Neg),
		unary("conj", "complex conjugate", mathplex.Conj),
		unary("abs", "magnitude |a|", abs),
		unary("floor", "component-wise floor", mathplex.Floor),
		unary("ceil", "component-wise ceiling", mathplex.Ceil),
		unary("round", "component-wise rounding", mathplex.Round),
		unary("square", "a²", mathplex.Square),
		unary("sqrt", "principal square root", mathplex.Sqrt),
		unary("log", "principal natural logarithm", mathplex.Log),
		unary("exp", "e^a", mathplex.Exp),
		unary("sin", "sine", mathplex.Sin),
		unary("cos", "cosine", mathplex.Cos),
		unary("tan", "tangent", mathplex.Tan),
		unary("cot", "cotangent", mathplex.Cot),
		unary("sec", "secant", mathplex.Sec),
		unary("cosec", "cosecant", mathplex.Cosec),
		unary("asin", "principal arcsine", mathplex.Asin),
		unary("acos", "principal arccosine", mathplex.Acos),
		unary("atan", "principal arctangent", mathplex.Atan),
	}
}

// root computes a^(1/n) for a real, non-zero n.
func root(a, n any) (mathplex.Complex, error) {
	d, err := mathplex.Transform(n)
	if err != nil {
		return mathplex.Zero, err
	}
	if d.Imag() != 0 || d.Real() == 0 {
		return mathplex.Zero, fmt.Errorf("%w: root degree %s must be real and non-zero", mathplex.ErrInvalidArgument, d)
	}
	return mathplex.Pow(a, 1/d.Real())
}

func abs(a any) (mathplex.Complex, error) {
	m, err := mathplex.Abs(a)
	if err != nil {
		return mathplex.Zero, err
	}
	return mathplex.FromReal(m), nil
}
