package tf

import "math/cmplx"

// Func maps a complex frequency s to the complex response G(s).
type Func func(s complex128) complex128

// Eval evaluates g at s and rejects non-finite responses.
func Eval(g Func, s complex128) (complex128, error) {
	v := g(s)
	if !IsFinite(v) {
		return v, &EvalError{S: s, Value: v, Wrapped: ErrSingular}
	}
	return v, nil
}

// EvalJw evaluates g on the imaginary axis, s = jω.
func EvalJw(g Func, omega float64) (complex128, error) {
	return Eval(g, complex(0, omega))
}

// IsFinite reports whether both components of v are finite.
func IsFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}

// Scale returns s ↦ k·g(s).
func Scale(g Func, k float64) Func {
	return func(s complex128) complex128 {
		return complex(k, 0) * g(s)
	}
}

// Step returns the Laplace-domain response to a step of the given
// amplitude, s ↦ amplitude·g(s)/s.
func Step(g Func, amplitude float64) Func {
	return func(s complex128) complex128 {
		return complex(amplitude, 0) * g(s) / s
	}
}
