package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Image renders charts with gonum/plot and writes one file per chart to
// Dir, named after the chart title. The file format follows Format
// (png, svg, pdf, ...).
type Image struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length
	Logger *log.Logger
}

func NewImage(dir, format string) *Image {
	return &Image{
		Dir:    dir,
		Format: format,
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
		Logger: log.Default(),
	}
}

// Path returns the file a chart is written to.
func (im *Image) Path(c *Chart) string {
	return filepath.Join(im.Dir, Slug(c.Title)+"."+im.Format)
}

func (im *Image) Show(c *Chart) error {
	p, err := Build(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(im.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	path := im.Path(c)
	if err := p.Save(im.Width, im.Height, path); err != nil {
		return fmt.Errorf("cannot write chart: %w", err)
	}
	if im.Logger != nil {
		im.Logger.Info("chart written", "title", c.Title, "path", path)
	}
	return nil
}

var dashes = []vg.Length{vg.Points(4), vg.Points(2)}

// Build converts a chart into a gonum plot.
func Build(c *Chart) (*plot.Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logX := c.XScale == Log

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true

	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if c.Grid {
		p.Add(plotter.NewGrid())
	}

	drawn := 0
	yLo, yHi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		pts := xys(s.X, s.Y, logX)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = rgba(s.Color)
		line.Width = vg.Points(1.5)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
		for _, pt := range pts {
			yLo, yHi = math.Min(yLo, pt.Y), math.Max(yHi, pt.Y)
		}
		drawn += len(pts)
	}
	if drawn == 0 {
		return nil, fmt.Errorf("%w: %q has no finite points", ErrNoData, c.Title)
	}

	for _, h := range c.HLines {
		v := h
		fn := plotter.NewFunction(func(float64) float64 { return v })
		fn.Color = rgba(Black)
		fn.Width = vg.Points(0.5)
		fn.Dashes = dashes
		p.Add(fn)
	}
	if c.YRange != nil {
		yLo, yHi = c.YRange.Min, c.YRange.Max
	}
	for _, v := range c.VLines {
		if logX && v <= 0 {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{{X: v, Y: yLo}, {X: v, Y: yHi}})
		if err != nil {
			return nil, err
		}
		line.Color = rgba(Black)
		line.Width = vg.Points(0.5)
		line.Dashes = dashes
		p.Add(line)
	}

	for _, m := range c.Markers {
		if math.IsNaN(m.X) || math.IsNaN(m.Y) || math.IsInf(m.X, 0) || math.IsInf(m.Y, 0) {
			continue
		}
		sc, err := plotter.NewScatter(plotter.XYs{{X: m.X, Y: m.Y}})
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = rgba(m.Color)
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		// a marker at x <= 0 cannot be placed on a log axis; keep its legend entry
		if !logX || m.X > 0 {
			p.Add(sc)
		}
		p.Legend.Add(m.Label, sc)
	}

	if c.XRange != nil {
		p.X.Min, p.X.Max = c.XRange.Min, c.XRange.Max
	}
	if c.YRange != nil {
		p.Y.Min, p.Y.Max = c.YRange.Min, c.YRange.Max
	}
	return p, nil
}

func xys(xs, ys []float64, logX bool) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		if logX && x <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func rgba(c Color) color.RGBA {
	switch c {
	case Blue:
		return color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	case Orange:
		return color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	case Red:
		return color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	default:
		return color.RGBA{A: 0xff}
	}
}
