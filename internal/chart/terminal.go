package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Terminal draws charts as text.
type Terminal struct {
	Out    io.Writer
	In     io.Reader
	Width  int
	Height int

	// Hold keeps each chart on screen until the user closes it.
	Hold bool
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{Out: out, Width: 80, Height: 15}
}

func (t *Terminal) Show(c *Chart) error {
	body, err := t.Render(c)
	if err != nil {
		return err
	}
	if t.Hold {
		return hold(body, t.In, t.Out)
	}
	_, err = fmt.Fprintln(t.Out, body)
	return err
}

// Render returns the chart as a string without writing it.
func (t *Terminal) Render(c *Chart) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var plot string
	var err error
	if c.Kind == Parametric {
		plot, err = t.renderCurve(c)
	} else {
		plot, err = t.renderFunction(c)
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(c.Title))
	sb.WriteRune('\n')
	sb.WriteString(plot)
	sb.WriteRune('\n')
	for _, m := range c.Markers {
		sb.WriteString(markerStyle(m.Color).Render("●"))
		sb.WriteString(fmt.Sprintf(" %s  (%.4g, %.4g)\n", m.Label, m.X, m.Y))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (t *Terminal) renderFunction(c *Chart) (string, error) {
	logX := c.XScale == Log

	var xr Range
	if c.XRange != nil {
		xr = *c.XRange
	} else {
		xr.Min, xr.Max = math.Inf(1), math.Inf(-1)
		for _, s := range c.Series {
			lo, hi, ok := bounds(s.X, logX)
			if ok {
				xr.Min = math.Min(xr.Min, lo)
				xr.Max = math.Max(xr.Max, hi)
			}
		}
	}
	if math.IsInf(xr.Min, 0) || math.IsInf(xr.Max, 0) || xr.Max <= xr.Min || (logX && xr.Min <= 0) {
		return "", fmt.Errorf("%w: %q has no usable x extent", ErrNoData, c.Title)
	}

	var yr Range
	if c.YRange != nil {
		yr = *c.YRange
	} else {
		yr.Min, yr.Max = math.Inf(1), math.Inf(-1)
		for _, s := range c.Series {
			lo, hi, ok := bounds(s.Y, false)
			if ok {
				yr.Min = math.Min(yr.Min, lo)
				yr.Max = math.Max(yr.Max, hi)
			}
		}
		if math.IsInf(yr.Min, 0) {
			yr = Range{Min: -1, Max: 1}
		}
	}

	width := max(t.Width, 2)
	cols := columns(xr, c.XScale, width)
	data := make([][]float64, 0, len(c.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(c.Series))
	for _, s := range c.Series {
		xs, ys := usable(s, logX)
		if len(xs) == 0 {
			continue
		}
		data = append(data, resample(xs, finite(ys, yr.Min, yr.Max), cols))
		colors = append(colors, ansi(s.Color))
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoData, c.Title)
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(t.Height),
		asciigraph.Width(width),
		asciigraph.LowerBound(yr.Min),
		asciigraph.UpperBound(yr.Max),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", c.YLabel, c.XLabel)),
	)

	scale := "linear"
	if logX {
		scale = "log"
	}
	axis := axisStyle.Render(fmt.Sprintf("%s: %.4g … %.4g (%s)", c.XLabel, xr.Min, xr.Max, scale))
	return graph + "\n" + axis, nil
}

// usable drops non-finite x and, on a log axis, x <= 0.
func usable(s Series, logX bool) (xs, ys []float64) {
	xs = make([]float64, 0, len(s.X))
	ys = make([]float64, 0, len(s.Y))
	for i, x := range s.X {
		if math.IsNaN(x) || math.IsInf(x, 0) || (logX && x <= 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, s.Y[i])
	}
	return xs, ys
}

func (t *Terminal) renderCurve(c *Chart) (string, error) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	extend := func(xs, ys []float64) {
		if lo, hi, ok := bounds(xs, false); ok {
			minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
		}
		if lo, hi, ok := bounds(ys, false); ok {
			minY, maxY = math.Min(minY, lo), math.Max(maxY, hi)
		}
	}
	for _, s := range c.Series {
		extend(s.X, s.Y)
	}
	for _, m := range c.Markers {
		extend([]float64{m.X}, []float64{m.Y})
	}
	if math.IsInf(minX, 0) || math.IsInf(minY, 0) {
		return "", fmt.Errorf("%w: %q", ErrNoData, c.Title)
	}
	if c.XRange != nil {
		minX, maxX = c.XRange.Min, c.XRange.Max
	} else {
		minX, maxX = pad(minX, maxX)
	}
	if c.YRange != nil {
		minY, maxY = c.YRange.Min, c.YRange.Max
	} else {
		minY, maxY = pad(minY, maxY)
	}

	width, height := max(t.Width, 2), max(t.Height, 2)
	canvas := NewCanvas(width, height)
	pw, ph := width*2-1, height*4-1
	px := func(x float64) int { return int(math.Round((x - minX) / (maxX - minX) * float64(pw))) }
	py := func(y float64) int { return ph - int(math.Round((y-minY)/(maxY-minY)*float64(ph))) }

	for _, v := range c.VLines {
		if v >= minX && v <= maxX {
			canvas.DashV(px(v))
		}
	}
	for _, h := range c.HLines {
		if h >= minY && h <= maxY {
			canvas.DashH(py(h))
		}
	}

	for _, s := range c.Series {
		prevOK := false
		var x0, y0 int
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
				prevOK = false
				continue
			}
			x1, y1 := px(x), py(y)
			if prevOK {
				if x1 != x0 || y1 != y0 {
					canvas.DrawLine(x0, y0, x1, y1)
				}
			} else {
				canvas.Set(x1, y1)
			}
			x0, y0, prevOK = x1, y1, true
		}
	}

	for _, m := range c.Markers {
		if m.X >= minX && m.X <= maxX && m.Y >= minY && m.Y <= maxY {
			canvas.Put(px(m.X), py(m.Y), '●')
		}
	}

	axis := axisStyle.Render(fmt.Sprintf("%s: %.4g … %.4g   %s: %.4g … %.4g", c.XLabel, minX, maxX, c.YLabel, minY, maxY))
	return strings.TrimRight(canvas.String(), "\n") + "\n" + axis, nil
}

func ansi(c Color) asciigraph.AnsiColor {
	switch c {
	case Blue:
		return asciigraph.Blue
	case Orange:
		return asciigraph.Orange
	case Red:
		return asciigraph.Red
	default:
		return asciigraph.Default
	}
}
