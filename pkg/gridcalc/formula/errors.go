package formula

import (
	"errors"
	"fmt"
)

// ErrBadReference indicates a token that looks like a cell reference but
// does not decode to a valid coordinate.
var ErrBadReference = errors.New("bad cell reference")

// ErrCycle indicates a circular reference along the evaluation path.
var ErrCycle = errors.New("circular reference detected")

// ErrMalformedExpression indicates an operand/operator imbalance or leftover
// tokens after RPN reduction.
var ErrMalformedExpression = errors.New("malformed expression")

// ErrNotANumber indicates non-formula cell text that is not a numeric literal.
var ErrNotANumber = errors.New("not a number")

// ErrBadToken indicates a character sequence outside the formula grammar.
var ErrBadToken = errors.New("bad token")

// EvalError wraps one of the sentinel evaluation errors with the offending
// input fragment.
type EvalError struct {
	// Detail is the token, label, or raw text that triggered the failure.
	Detail string
	Err    error
}

func (e *EvalError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Detail)
	}
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalErr(sentinel error, detail string) *EvalError {
	return &EvalError{Detail: detail, Err: sentinel}
}
