package diskplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyCurve is returned when a curve has no point that can be drawn on
// the figure's axes.
var ErrEmptyCurve = errors.New("diskplot: curve has no plottable points")

// Dash selects the line pattern of a curve.
type Dash int

const (
	Solid Dash = iota
	Dotted
	Dashed
)

func (d Dash) pattern() []vg.Length {
	switch d {
	case Dotted:
		return []vg.Length{vg.Points(1), vg.Points(3)}
	case Dashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	default:
		return nil
	}
}

// Curve is one labelled line.
type Curve struct {
	Label string
	X, Y  []float64
	Dash  Dash
}

// Figure is a single-panel line plot.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	LogX   bool
	LogY   bool
	// XMin and XMax pin the x range when XMax > XMin.
	XMin, XMax float64
	Curves     []Curve
	// Width and Height of the saved image in inches.
	Width, Height float64
}

// Labels returns the curve labels in legend order.
func (f *Figure) Labels() []string {
	out := make([]string, len(f.Curves))
	for i, c := range f.Curves {
		out[i] = c.Label
	}

	return out
}

// Plot converts the figure into a gonum plot. Points that cannot be shown
// on a logarithmic axis (non-positive values) are dropped.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	if f.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if f.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for _, c := range f.Curves {
		xys, err := f.points(c)
		if err != nil {
			return nil, err
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("diskplot: curve %q: %w", c.Label, err)
		}

		line.LineStyle.Color = color.Black
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = c.Dash.pattern()

		p.Add(line)
		p.Legend.Add(c.Label, line)
	}

	p.Legend.Top = true

	if f.XMax > f.XMin {
		p.X.Min = f.XMin
		p.X.Max = f.XMax
	}

	return p, nil
}

func (f *Figure) points(c Curve) (plotter.XYs, error) {
	if len(c.X) != len(c.Y) {
		return nil, fmt.Errorf("diskplot: curve %q: %d x values, %d y values", c.Label, len(c.X), len(c.Y))
	}

	xys := make(plotter.XYs, 0, len(c.X))
	for i := range c.X {
		if f.LogX && !(c.X[i] > 0) {
			continue
		}

		if f.LogY && !(c.Y[i] > 0) {
			continue
		}

		xys = append(xys, plotter.XY{X: c.X[i], Y: c.Y[i]})
	}

	if len(xys) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCurve, c.Label)
	}

	return xys, nil
}

// Save renders the figure to path. The image format follows the file
// extension (png, svg, pdf, ...).
func (f *Figure) Save(path string) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}

	width, height := f.Width, f.Height
	if width <= 0 || height <= 0 {
		def := DefaultConfig()
		width, height = def.Width, def.Height
	}

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return fmt.Errorf("diskplot: save %s: %w", f.Name, err)
	}

	return nil
}
