package eval

import "github.com/pkg/errors"

var (
	ErrOverflow     = errors.New("overflow")
	ErrDivideByZero = errors.New("division by zero")
)
