package chart

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrNoData indicates a chart without any drawable series.
	ErrNoData = errors.New("chart: no data to plot")

	// ErrLengthMismatch indicates a series whose X and Y differ in length.
	ErrLengthMismatch = errors.New("chart: series x/y length mismatch")
)

// Display shows a chart. Show blocks until the chart has been presented.
type Display interface {
	Show(c *Chart) error
}

type Scale int

const (
	Linear Scale = iota
	Log
)

// Kind tells backends how the series relate to the x axis.
type Kind int

const (
	// Function series have one y per x with x ascending.
	Function Kind = iota
	// Parametric series are arbitrary curves in the plane.
	Parametric
)

type Color int

const (
	Default Color = iota
	Blue
	Orange
	Red
	Black
)

type Range struct {
	Min, Max float64
}

type Series struct {
	Name  string
	X, Y  []float64
	Color Color
}

type Marker struct {
	Label string
	X, Y  float64
	Color Color
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Kind   Kind
	XScale Scale
	XRange *Range
	YRange *Range
	Grid   bool

	Series  []Series
	Markers []Marker

	// Dashed reference lines at fixed y (HLines) or x (VLines).
	HLines []float64
	VLines []float64
}

// Validate checks that every series is index-aligned and at least one
// series has points.
func (c *Chart) Validate() error {
	points := 0
	for _, s := range c.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: %q has %d x and %d y", ErrLengthMismatch, s.Name, len(s.X), len(s.Y))
		}
		points += len(s.X)
	}
	if points == 0 {
		return fmt.Errorf("%w: %q", ErrNoData, c.Title)
	}
	return nil
}

// Slug turns a chart title into a file name stem.
func Slug(title string) string {
	var sb strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			sb.WriteRune('_')
			lastSep = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "_")
	if slug == "" {
		return "chart"
	}
	return slug
}
