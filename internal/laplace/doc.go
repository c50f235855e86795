// Package laplace implements numerical inversion of the Laplace transform.
//
// Given F(s) and a time t > 0, each [Method] approximates f(t) = L⁻¹{F}(t)
// from samples of F in the complex plane. Methods are looked up by name:
//
//   - "cohen": Fourier series with Cohen-Villegas-Zagier acceleration (default)
//   - "talbot": fixed Talbot contour
//   - "stehfest": Gaver-Stehfest, real-axis samples only
//   - "dehoog": de Hoog, Knight and Stokes continued fraction
//
// # Accuracy
//
// All methods are approximate. Stehfest degrades quickly for oscillatory
// responses; Talbot requires F to be analytic left of the real axis
// singularities. For smooth, non-oscillating f the default method is
// accurate to better than 1e-7.
//
//	f, err := laplace.Invert(func(s complex128) complex128 { return 1 / (s + 1) }, 1, "cohen")
//	// f ≈ e⁻¹
package laplace
