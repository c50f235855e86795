// Package timeresp renders impulse and step responses of a transfer
// function by numerical inverse Laplace transform over a time grid.
package timeresp

import (
	"fmt"

	"github.com/san-kum/transferanalyzer/internal/chart"
	"github.com/san-kum/transferanalyzer/internal/laplace"
	"github.com/san-kum/transferanalyzer/internal/tf"
)

// GridStart is the first time sample. It stays above zero so that the
// pole introduced by 1/s in the step response is never evaluated.
const GridStart = 0.01

const (
	DefaultEndRange  = 30.0
	DefaultPrecision = 250
	DefaultAmplitude = 1.0
)

// Options controls the time grid and the inversion algorithm. The grid is
// [GridStart, EndRange) with step EndRange/Precision.
type Options struct {
	EndRange  float64
	Precision int
	Method    string
}

func DefaultOptions() Options {
	return Options{
		EndRange:  DefaultEndRange,
		Precision: DefaultPrecision,
		Method:    laplace.DefaultMethod,
	}
}

type StepOptions struct {
	Options
	Amplitude float64
}

func DefaultStepOptions() StepOptions {
	return StepOptions{Options: DefaultOptions(), Amplitude: DefaultAmplitude}
}

type Response struct {
	Time      []float64
	Amplitude []float64
}

// Grid returns the time samples for opts.
func Grid(opts Options) ([]float64, error) {
	if opts.EndRange <= GridStart || opts.Precision <= 0 {
		return nil, fmt.Errorf("%w: end_range=%v precision=%d", tf.ErrInvalidRange, opts.EndRange, opts.Precision)
	}
	return tf.Arange(GridStart, opts.EndRange, opts.EndRange/float64(opts.Precision))
}

// Impulse inverts G(s) at every grid time.
func Impulse(g tf.Func, opts Options) (*Response, error) {
	return invert(g, opts)
}

// Step inverts Amplitude·G(s)/s at every grid time.
func Step(g tf.Func, opts StepOptions) (*Response, error) {
	return invert(tf.Step(g, opts.Amplitude), opts.Options)
}

// The method name is resolved by the first inversion, not up front.
func invert(F tf.Func, opts Options) (*Response, error) {
	times, err := Grid(opts)
	if err != nil {
		return nil, err
	}

	r := &Response{Time: times, Amplitude: make([]float64, len(times))}
	for i, t := range times {
		f, err := laplace.Invert(F, t, opts.Method)
		if err != nil {
			return nil, err
		}
		r.Amplitude[i] = f
	}
	return r, nil
}

// Chart builds the line chart for r.
func (r *Response) Chart(title string) *chart.Chart {
	return &chart.Chart{
		Title:  title,
		XLabel: "Time (s)",
		YLabel: "Output amplitude",
		Grid:   true,
		Series: []chart.Series{{X: r.Time, Y: r.Amplitude, Color: chart.Blue}},
	}
}

func PlotImpulse(g tf.Func, opts Options, d chart.Display) (*Response, error) {
	r, err := Impulse(g, opts)
	if err != nil {
		return nil, err
	}
	return r, d.Show(r.Chart("Impulse response"))
}

func PlotStep(g tf.Func, opts StepOptions, d chart.Display) (*Response, error) {
	r, err := Step(g, opts)
	if err != nil {
		return nil, err
	}
	return r, d.Show(r.Chart("Step response"))
}
