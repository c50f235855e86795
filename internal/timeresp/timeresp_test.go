package timeresp

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/transferanalyzer/internal/chart"
	"github.com/san-kum/transferanalyzer/internal/laplace"
	"github.com/san-kum/transferanalyzer/internal/tf"
)

var firstOrder = tf.Rational([]float64{1}, []float64{1, 1})

type recorder struct {
	charts []*chart.Chart
}

func (r *recorder) Show(c *chart.Chart) error {
	r.charts = append(r.charts, c)
	return c.Validate()
}

func TestGrid(t *testing.T) {
	times, err := Grid(DefaultOptions())
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	if len(times) != DefaultPrecision {
		t.Errorf("expected %d samples, got %d", DefaultPrecision, len(times))
	}
	if times[0] != GridStart {
		t.Errorf("expected first sample %v, got %v", GridStart, times[0])
	}
	if last := times[len(times)-1]; last >= DefaultEndRange {
		t.Errorf("last sample %v not below end_range", last)
	}
}

func TestImpulseFirstOrder(t *testing.T) {
	opts := Options{EndRange: 5, Precision: 50, Method: "cohen"}
	r, err := Impulse(firstOrder, opts)
	if err != nil {
		t.Fatalf("impulse failed: %v", err)
	}
	if len(r.Amplitude) != len(r.Time) {
		t.Fatal("samples not aligned with grid")
	}

	for i, tm := range r.Time {
		if math.Abs(r.Amplitude[i]-math.Exp(-tm)) > 1e-6 {
			t.Errorf("t=%v: expected %v, got %v", tm, math.Exp(-tm), r.Amplitude[i])
		}
	}

	// grid point 0.01 + 10*0.1 = 1.01
	if math.Abs(r.Amplitude[10]-0.364) > 1e-3 {
		t.Errorf("expected ≈0.364 near t=1, got %v", r.Amplitude[10])
	}
}

func TestStepFirstOrder(t *testing.T) {
	r, err := Step(firstOrder, DefaultStepOptions())
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if math.Abs(r.Amplitude[0]) > 0.02 {
		t.Errorf("expected ≈0 at t=%v, got %v", r.Time[0], r.Amplitude[0])
	}
	last := len(r.Amplitude) - 1
	if math.Abs(r.Amplitude[last]-1) > 1e-6 {
		t.Errorf("expected steady state 1, got %v", r.Amplitude[last])
	}
}

func TestStepAmplitude(t *testing.T) {
	opts := DefaultStepOptions()
	opts.Amplitude = 2.5
	opts.Method = "talbot"

	r, err := Step(firstOrder, opts)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	last := len(r.Amplitude) - 1
	if math.Abs(r.Amplitude[last]-2.5) > 1e-6 {
		t.Errorf("expected steady state 2.5, got %v", r.Amplitude[last])
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"end at grid start", Options{EndRange: 0.01, Precision: 10, Method: "cohen"}, tf.ErrInvalidRange},
		{"negative end", Options{EndRange: -1, Precision: 10, Method: "cohen"}, tf.ErrInvalidRange},
		{"zero precision", Options{EndRange: 5, Precision: 0, Method: "cohen"}, tf.ErrInvalidRange},
		{"unknown method", Options{EndRange: 5, Precision: 10, Method: "nope"}, laplace.ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Impulse(firstOrder, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("impulse: expected %v, got %v", tt.want, err)
			}
			_, err = Step(firstOrder, StepOptions{Options: tt.opts, Amplitude: 1})
			if !errors.Is(err, tt.want) {
				t.Errorf("step: expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPlot(t *testing.T) {
	rec := &recorder{}
	opts := Options{EndRange: 10, Precision: 20, Method: "dehoog"}

	if _, err := PlotImpulse(firstOrder, opts, rec); err != nil {
		t.Fatalf("impulse plot failed: %v", err)
	}
	if _, err := PlotStep(firstOrder, StepOptions{Options: opts, Amplitude: 1}, rec); err != nil {
		t.Fatalf("step plot failed: %v", err)
	}

	if len(rec.charts) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(rec.charts))
	}
	if rec.charts[0].Title != "Impulse response" || rec.charts[1].Title != "Step response" {
		t.Errorf("unexpected titles %q, %q", rec.charts[0].Title, rec.charts[1].Title)
	}
	if rec.charts[1].YLabel != "Output amplitude" || rec.charts[1].XLabel != "Time (s)" {
		t.Error("unexpected axis labels")
	}
}
