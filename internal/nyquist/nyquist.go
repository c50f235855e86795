// Package nyquist renders the Nyquist contour of a transfer function:
// G(jω) traced in the complex plane together with its mirror image and the
// (-1, 0) critical point. No encirclement count or stability verdict is
// computed; the diagram is for visual inspection.
package nyquist

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/transferanalyzer/internal/chart"
	"github.com/san-kum/transferanalyzer/internal/tf"
)

const (
	DefaultLow  = -500.0
	DefaultHigh = 500.0
	DefaultStep = 0.009
)

// Options is the angular-frequency sweep [Low, High) with spacing Step.
type Options struct {
	Low  float64
	High float64
	Step float64
}

func DefaultOptions() Options {
	return Options{Low: DefaultLow, High: DefaultHigh, Step: DefaultStep}
}

// Contour holds G(jω) for every sampled ω, index-aligned.
type Contour struct {
	Omega  []float64
	Points []complex128
}

func Compute(g tf.Func, opts Options) (*Contour, error) {
	if opts.High <= opts.Low {
		return nil, fmt.Errorf("%w: omega_range=(%v, %v)", tf.ErrInvalidRange, opts.Low, opts.High)
	}

	omega, err := tf.Arange(opts.Low, opts.High, opts.Step)
	if err != nil {
		return nil, err
	}

	c := &Contour{Omega: omega, Points: make([]complex128, len(omega))}
	for i, w := range omega {
		v, err := tf.EvalJw(g, w)
		if err != nil {
			return nil, err
		}
		c.Points[i] = v
	}
	return c, nil
}

// Mirror returns the contour reflected across the real axis.
func (c *Contour) Mirror() []complex128 {
	m := make([]complex128, len(c.Points))
	for i, p := range c.Points {
		m[i] = cmplx.Conj(p)
	}
	return m
}

// Chart builds the Nyquist diagram: the contour and its mirror in blue,
// the start point, the critical point, and dashed axes through the origin.
func (c *Contour) Chart() *chart.Chart {
	re, im := split(c.Points)
	mre, mim := split(c.Mirror())

	return &chart.Chart{
		Title:  "Nyquist Diagram",
		XLabel: "Re",
		YLabel: "Im",
		Kind:   chart.Parametric,
		Grid:   true,
		Series: []chart.Series{
			{X: re, Y: im, Color: chart.Blue},
			{X: mre, Y: mim, Color: chart.Blue},
		},
		Markers: []chart.Marker{
			{Label: "Start point", X: re[0], Y: im[0], Color: chart.Orange},
			{Label: "(-1,0)", X: -1, Y: 0, Color: chart.Red},
		},
		HLines: []float64{0},
		VLines: []float64{0},
	}
}

func split(points []complex128) (re, im []float64) {
	re = make([]float64, len(points))
	im = make([]float64, len(points))
	for i, p := range points {
		re[i], im[i] = real(p), imag(p)
	}
	return re, im
}

func Plot(g tf.Func, opts Options, d chart.Display) (*Contour, error) {
	c, err := Compute(g, opts)
	if err != nil {
		return nil, err
	}
	return c, d.Show(c.Chart())
}
