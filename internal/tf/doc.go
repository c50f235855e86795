// Package tf provides the transfer-function primitives shared by the
// renderers.
//
// A transfer function is an opaque mapping from complex frequency s to a
// complex response:
//
//   - [Func]: the caller-supplied mapping
//   - [Eval] / [EvalJw]: evaluation with singularity detection
//   - [Arange]: half-open, evenly spaced sample grids
//   - [Rational]: polynomial-ratio constructor used by the CLI
//
// # Singularities
//
// Complex division by zero does not trap in Go, it yields Inf or NaN. Every
// evaluation goes through [Eval], which turns a non-finite response into an
// [*EvalError] wrapping [ErrSingular]:
//
//	g := tf.Rational([]float64{1}, []float64{1, 0}) // 1/s
//	_, err := tf.EvalJw(g, 0)
//	errors.Is(err, tf.ErrSingular) // true
package tf
