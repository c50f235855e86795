package tf

import (
	"errors"
	"fmt"
)

// Domain errors for transfer-function evaluation and grid construction.
var (
	// ErrSingular indicates a non-finite response (pole or domain error).
	ErrSingular = errors.New("tf: transfer function is singular at sample point")

	// ErrInvalidRange indicates range bounds that cannot produce a usable grid.
	ErrInvalidRange = errors.New("tf: invalid range")

	// ErrInvalidStep indicates a non-positive or non-finite grid step.
	ErrInvalidStep = errors.New("tf: invalid grid step")

	// ErrEmptyGrid indicates a grid with no points.
	ErrEmptyGrid = errors.New("tf: empty grid")
)

// EvalError wraps an error with the sample point that produced it.
type EvalError struct {
	S       complex128
	Value   complex128
	Wrapped error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s (s=%v, G(s)=%v)", e.Wrapped.Error(), e.S, e.Value)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}
