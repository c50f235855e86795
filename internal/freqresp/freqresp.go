// Package freqresp renders the frequency response (Bode magnitude and
// phase) of a transfer function and locates its crossover point.
package freqresp

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/transferanalyzer/internal/chart"
	"github.com/san-kum/transferanalyzer/internal/tf"
)

const (
	DefaultStartRange = 0.1
	DefaultEndRange   = 1000.0
)

// Options bounds the sweep. StartRange is both the step of the linear ω
// grid [0, EndRange) and, divided by ten, the left edge of the log axis.
type Options struct {
	StartRange float64
	EndRange   float64
}

func DefaultOptions() Options {
	return Options{StartRange: DefaultStartRange, EndRange: DefaultEndRange}
}

// Crossover is the sample whose magnitude is closest to 0 dB.
type Crossover struct {
	Index int
	Omega float64
	Phase float64
}

type Response struct {
	Omega       []float64
	MagnitudeDB []float64
	PhaseDeg    []float64
	Crossover   Crossover
}

// Compute sweeps G(jω) over the grid and finds the crossover. The first
// occurrence wins when several samples are equally close to 0 dB.
func Compute(g tf.Func, opts Options) (*Response, error) {
	if opts.StartRange <= 0 || opts.EndRange <= opts.StartRange {
		return nil, fmt.Errorf("%w: start_range=%v end_range=%v", tf.ErrInvalidRange, opts.StartRange, opts.EndRange)
	}

	omega, err := tf.Arange(0, opts.EndRange, opts.StartRange)
	if err != nil {
		return nil, err
	}

	r := &Response{
		Omega:       omega,
		MagnitudeDB: make([]float64, len(omega)),
		PhaseDeg:    make([]float64, len(omega)),
	}
	absDB := make([]float64, len(omega))
	for i, w := range omega {
		v, err := tf.EvalJw(g, w)
		if err != nil {
			return nil, err
		}
		r.MagnitudeDB[i] = DB(cmplx.Abs(v))
		r.PhaseDeg[i] = cmplx.Phase(v) * 180 / math.Pi
		absDB[i] = math.Abs(r.MagnitudeDB[i])
	}

	idx := floats.MinIdx(absDB)
	r.Crossover = Crossover{Index: idx, Omega: omega[idx], Phase: r.PhaseDeg[idx]}
	return r, nil
}

// DB converts a linear amplitude to decibels.
func DB(x float64) float64 {
	return 20 * math.Log10(x)
}

// Charts builds the magnitude and phase charts for r.
func (r *Response) Charts(opts Options) (module, phase *chart.Chart) {
	xr := &chart.Range{Min: opts.StartRange / 10, Max: opts.EndRange}
	c := r.Crossover

	module = &chart.Chart{
		Title:  "Frequency response: module",
		XLabel: "ω (rad/s)",
		YLabel: "Module (dB)",
		XScale: chart.Log,
		XRange: xr,
		YRange: &chart.Range{Min: -80, Max: 80},
		Grid:   true,
		Series: []chart.Series{{X: r.Omega, Y: r.MagnitudeDB, Color: chart.Blue}},
		Markers: []chart.Marker{{
			Label: fmt.Sprintf("ω_c = %v", c.Omega),
			X:     c.Omega,
			Y:     0,
			Color: chart.Orange,
		}},
	}

	phase = &chart.Chart{
		Title:  "Frequency response: phase",
		XLabel: "ω (rad/s)",
		YLabel: "Phase (degrees)",
		XScale: chart.Log,
		XRange: xr,
		YRange: &chart.Range{Min: -180, Max: 180},
		Grid:   true,
		Series: []chart.Series{{X: r.Omega, Y: r.PhaseDeg, Color: chart.Blue}},
		Markers: []chart.Marker{{
			Label: fmt.Sprintf("ϕ_c = %v", c.Phase),
			X:     c.Omega,
			Y:     c.Phase,
			Color: chart.Orange,
		}},
	}
	return module, phase
}

// Plot computes the response and shows the magnitude chart, then the
// phase chart.
func Plot(g tf.Func, opts Options, d chart.Display) (*Response, error) {
	r, err := Compute(g, opts)
	if err != nil {
		return nil, err
	}

	module, phase := r.Charts(opts)
	if err := d.Show(module); err != nil {
		return r, err
	}
	if err := d.Show(phase); err != nil {
		return r, err
	}
	return r, nil
}
