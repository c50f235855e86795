package chart

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		chart Chart
		want  error
	}{
		{"ok", Chart{Series: []Series{{X: []float64{1, 2}, Y: []float64{3, 4}}}}, nil},
		{"mismatch", Chart{Series: []Series{{X: []float64{1, 2}, Y: []float64{3}}}}, ErrLengthMismatch},
		{"no series", Chart{}, ErrNoData},
		{"empty series", Chart{Series: []Series{{}}}, ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chart.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Frequency response: module", "frequency_response_module"},
		{"Nyquist Diagram", "nyquist_diagram"},
		{"  Step   response ", "step_response"},
		{"ϕ", "chart"},
	}
	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)

	if c.Grid[0][0] == blank {
		t.Error("expected first cell to be set")
	}
	if c.Grid[1][3] == blank {
		t.Error("expected last cell to be set")
	}
	if c.Grid[1][0] != blank {
		t.Error("expected off-diagonal cell to stay blank")
	}
}

func TestCanvasPutKeepsGlyph(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Put(0, 0, '●')
	c.Set(1, 1)

	if c.Grid[0][0] != '●' {
		t.Errorf("glyph overwritten: %q", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestResample(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 20}

	got := resample(xs, ys, []float64{-1, 0.5, 1.5, 5})
	want := []float64{0, 5, 15, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("col %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestColumnsLog(t *testing.T) {
	cols := columns(Range{Min: 0.01, Max: 1000}, Log, 6)
	want := []float64{0.01, 0.1, 1, 10, 100, 1000}
	for i := range want {
		if d := cols[i] - want[i]; d > want[i]*1e-9 || d < -want[i]*1e-9 {
			t.Errorf("col %d: expected %v, got %v", i, want[i], cols[i])
		}
	}
}
