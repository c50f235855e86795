package chart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func bodeLike() *Chart {
	xs := []float64{0, 0.1, 1, 10, 100}
	ys := []float64{0, -0.04, -3, -20, math.Inf(-1)}
	return &Chart{
		Title:   "Frequency response: module",
		XLabel:  "ω (rad/s)",
		YLabel:  "Module (dB)",
		XScale:  Log,
		XRange:  &Range{Min: 0.01, Max: 100},
		YRange:  &Range{Min: -80, Max: 80},
		Grid:    true,
		Series:  []Series{{X: xs, Y: ys, Color: Blue}},
		Markers: []Marker{{Label: "ω_c = 0", X: 0, Y: 0, Color: Orange}},
	}
}

func TestTerminalRenderFunction(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	out, err := term.Render(bodeLike())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Frequency response: module", "ω_c = 0", "log"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminalRenderCurve(t *testing.T) {
	n := 200
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / float64(n-1)
		xs[i], ys[i] = math.Cos(a), math.Sin(a)
	}

	c := &Chart{
		Title:   "Nyquist Diagram",
		XLabel:  "Re",
		YLabel:  "Im",
		Kind:    Parametric,
		Series:  []Series{{X: xs, Y: ys, Color: Blue}},
		Markers: []Marker{{Label: "(-1,0)", X: -1, Y: 0, Color: Red}},
		HLines:  []float64{0},
		VLines:  []float64{0},
	}

	term := NewTerminal(&bytes.Buffer{})
	term.Width, term.Height = 40, 10
	out, err := term.Render(c)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "●") {
		t.Error("expected marker glyph on canvas")
	}
	if !strings.Contains(out, "(-1,0)") {
		t.Error("expected marker legend")
	}
}

func TestTerminalShow(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	if err := term.Show(bodeLike()); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output")
	}
}

func TestTerminalNoData(t *testing.T) {
	c := &Chart{
		Title:  "empty",
		XScale: Log,
		Series: []Series{{X: []float64{0, -1}, Y: []float64{1, 2}}},
	}
	_, err := NewTerminal(&bytes.Buffer{}).Render(c)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestViewerCloses(t *testing.T) {
	v := viewer{body: "chart"}

	m, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("unexpected command for unbound key")
	}
	if !strings.Contains(m.View(), "close") {
		t.Error("expected key hint while open")
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "chart" {
		t.Errorf("expected bare body after close, got %q", m.View())
	}
}
