package mathplex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse parses a complex literal. Accepts:
//
//	"a+bi", "a-bi", "bi", "i", "-i", "a", and the calculator form "a+b" (no unit marker,
//	the part after the sign is imaginary).
//
// Whitespace, parentheses, commas and underscores are ignored, so "( 2.5 + 60 i )" parses
// like "2.5+60i". Any other letter than the exponent marker 'e'/'E' and the unit marker
// 'i'/'I' is an error. A bare sign before the unit marker means 1.
func Parse(s string) (Complex, error) {
	re, im, err := normalizeToPair(s)
	if err != nil {
		return Zero, fmt.Errorf("%w %q: %v", ErrParse, s, err)
	}
	r, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w %q: real part: %w", ErrParse, s, err)
	}
	i, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w %q: imaginary part: %w", ErrParse, s, err)
	}
	return New(r, i), nil
}

// MustParse panics on error.
func MustParse(s string) Complex {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeToPair splits a literal into real and imaginary strings ready for ParseFloat.
func normalizeToPair(in string) (string, string, error) {
	var b strings.Builder
	for _, r := range in {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-', r == '.', r == 'e', r == 'E', r == 'i':
			b.WriteRune(r)
		case r == 'I':
			b.WriteByte('i')
		case unicode.IsSpace(r), r == '(', r == ')', r == ',', r == '_':
		default:
			return "", "", fmt.Errorf("unexpected character %q", r)
		}
	}
	s := b.String()
	if s == "" {
		return "", "", fmt.Errorf("empty literal")
	}

	unit := strings.HasSuffix(s, "i")
	core := strings.TrimSuffix(s, "i")
	if strings.Contains(core, "i") {
		return "", "", fmt.Errorf("unit marker must be last")
	}

	idx, n := splitSign(core)
	if n > 1 {
		return "", "", fmt.Errorf("too many signs")
	}

	var re, im string
	switch {
	case idx > 0:
		re, im = core[:idx], core[idx:]
	case unit:
		re, im = "0", core
	default:
		return core, "0", nil
	}
	if re == "" || re == "+" || re == "-" {
		return "", "", fmt.Errorf("missing real part")
	}
	if !unit && (im == "" || im == "+" || im == "-") {
		return "", "", fmt.Errorf("sign without a value")
	}
	switch im {
	case "", "+":
		im = "1"
	case "-":
		im = "-1"
	}
	return re, im, nil
}

// splitSign finds the last '+'/'-' that is neither at position 0 nor part of an exponent,
// and counts how many such signs there are.
func splitSign(s string) (idx, count int) {
	idx = -1
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		if s[i-1] == 'e' || s[i-1] == 'E' {
			continue
		}
		if idx < 0 {
			idx = i
		}
		count++
	}
	return idx, count
}
