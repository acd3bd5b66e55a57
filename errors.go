package mathplex

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an operand is not a Complex, a number or a string.
	ErrTypeMismatch = errors.New("mathplex: unsupported operand type")
	// ErrParse is returned for malformed complex literals.
	ErrParse = errors.New("mathplex: invalid complex literal")
	// ErrDomain is returned at poles, where an analytic denominator is exactly zero.
	ErrDomain = errors.New("mathplex: argument outside function domain")
	// ErrDivisionByZero is a domain error raised by Div.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrDomain)
	// ErrInvalidArgument is returned for bad argument lists (e.g. Min with no operands).
	ErrInvalidArgument = errors.New("mathplex: invalid argument")
)
