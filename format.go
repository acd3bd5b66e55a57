package mathplex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders the canonical "a+bi" form. Integral parts print without decimals,
// others with 4 decimal places; the imaginary part always carries a sign.
func (c Complex) String() string {
	return canonical(c.re) + withSign(canonical(c.im)) + "i"
}

func canonical(x float64) string {
	if x == 0 {
		return "0" // also -0
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', 4, 64)
}

func withSign(s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s
	}
	return "+" + s
}

func joinParts(re, im string) string { return re + withSign(im) + "i" }

// Formatting with explicit precision

func (c Complex) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return joinParts(c.RealStringFixed(digits), c.ImagStringFixed(digits))
}

func (c Complex) StringScientific(digits int) string {
	if digits < 1 {
		digits = 1
	}
	return joinParts(strconv.FormatFloat(c.re, 'e', digits, 64), strconv.FormatFloat(c.im, 'e', digits, 64))
}

func (c Complex) RealStringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(c.re, 'f', digits, 64)
}

func (c Complex) ImagStringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(c.im, 'f', digits, 64)
}

// StringPolar renders "r∠θ" with θ in radians.
func (c Complex) StringPolar(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(c.mag, 'f', digits, 64) + "∠" + strconv.FormatFloat(c.arg, 'f', digits, 64)
}

// Format implements fmt.Formatter. %v and %s print the canonical form; %f, %e and %g
// apply the verb (and precision, if any) to both parts.
func (c Complex) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = -1
	}
	var s string
	switch verb {
	case 'v', 's':
		s = c.String()
	case 'q':
		s = strconv.Quote(c.String())
	case 'f', 'F', 'e', 'E', 'g', 'G':
		if verb == 'F' {
			verb = 'f'
		}
		s = joinParts(strconv.FormatFloat(c.re, byte(verb), prec, 64), strconv.FormatFloat(c.im, byte(verb), prec, 64))
	default:
		s = fmt.Sprintf("%%!%c(mathplex.Complex=%s)", verb, c.String())
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	fmt.Fprint(f, s)
}
