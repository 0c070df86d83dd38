package eval

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every error Evaluate returns.
var ErrInvalid = errors.New("invalid expression")

var (
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalid)
	ErrArithmetic     = fmt.Errorf("%w: arithmetic fault", ErrInvalid)
)

// SyntaxError reports where parsing stopped.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalid
}

func syntaxErrorf(pos int, format string, args ...interface{}) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
