package diskplot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-disk/disk/blackbody"
	"github.com/cwbudde/algo-disk/disk/flux"
	"github.com/cwbudde/algo-disk/disk/relcorr"
	"github.com/cwbudde/algo-disk/internal/vec"
)

// ErrUnknownPlot is returned by Build for names without a builder.
var ErrUnknownPlot = errors.New("diskplot: unknown plot")

// Builder produces a figure from a config.
type Builder func(cfg Config) (*Figure, error)

var builders = map[string]Builder{
	"rr":        RR,
	"blackbody": Blackbody,
	"teff":      Temperature,
}

// Names lists the available figures in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Build creates the named figure.
func Build(name string, opts ...Option) (*Figure, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlot, name)
	}

	return b(ApplyOptions(opts...))
}

// RR plots Krolik's R_R factor for a* = 0 and a* = 0.99 together with the
// Newtonian profile 1 - sqrt(6/r).
func RR(cfg Config) (*Figure, error) {
	r, err := vec.LogSpace(cfg.RMin, cfg.RMax, cfg.Points)
	if err != nil {
		return nil, err
	}

	fig := newFigure("rr", cfg)
	fig.XLabel = "r/r_g"
	fig.YLabel = "R_R"
	fig.LogX = true

	for _, s := range []struct {
		spin  float64
		label string
		dash  Dash
	}{
		{spin: 0, label: "a_*=0", dash: Solid},
		{spin: 0.99, label: "a_*=0.99", dash: Dotted},
	} {
		rr, err := relcorr.FluxFactor(s.spin, r)
		if err != nil {
			return nil, fmt.Errorf("diskplot: R_R for spin %v: %w", s.spin, err)
		}

		fig.Curves = append(fig.Curves, Curve{Label: s.label, X: r, Y: rr, Dash: s.dash})
	}

	fnewt, err := relcorr.Newtonian(r, relcorr.NewtonianInnerRadius)
	if err != nil {
		return nil, err
	}

	fig.Curves = append(fig.Curves, Curve{Label: "Newtonian", X: r, Y: fnewt, Dash: Dashed})

	return fig, nil
}

// Blackbody plots Planck spectra for three temperatures. The radius range
// of cfg is not used.
func Blackbody(cfg Config) (*Figure, error) {
	nu, err := vec.LogSpace(1e12, 1e19, cfg.Points)
	if err != nil {
		return nil, err
	}

	fig := newFigure("blackbody", cfg)
	fig.Title = "Blackbody spectra"
	fig.XMin, fig.XMax = nu[0], nu[len(nu)-1]
	fig.XLabel = "nu [Hz]"
	fig.YLabel = "B_nu [erg/s/cm^2/Hz/sr]"
	fig.LogX = true
	fig.LogY = true

	for i, teff := range []float64{1e4, 1e5, 1e6} {
		bnu := make([]float64, len(nu))
		if err := blackbody.Spectrum(bnu, nu, teff); err != nil {
			return nil, err
		}

		fig.Curves = append(fig.Curves, Curve{
			Label: fmt.Sprintf("T=%.0e K", teff),
			X:     nu,
			Y:     bnu,
			Dash:  Dash(i),
		})
	}

	return fig, nil
}

// Temperature plots the Page & Thorne effective temperature of a 10 Msun
// hole accreting at 0.1 Eddington for a* = 0 and a* = 0.99.
func Temperature(cfg Config) (*Figure, error) {
	r, err := vec.LogSpace(cfg.RMin, cfg.RMax, cfg.Points)
	if err != nil {
		return nil, err
	}

	fig := newFigure("teff", cfg)
	fig.Title = "Disk effective temperature"
	fig.XLabel = "r/r_g"
	fig.YLabel = "T_eff [K]"
	fig.LogX = true
	fig.LogY = true

	for _, s := range []struct {
		spin  float64
		label string
		dash  Dash
	}{
		{spin: 0, label: "a_*=0", dash: Solid},
		{spin: 0.99, label: "a_*=0.99", dash: Dotted},
	} {
		p, err := flux.NewProfile(flux.WithMass(10), flux.WithAccretionRate(0.1), flux.WithSpin(s.spin))
		if err != nil {
			return nil, err
		}

		temp, err := p.Temperature(r)
		if err != nil {
			return nil, fmt.Errorf("diskplot: temperature for spin %v: %w", s.spin, err)
		}

		fig.Curves = append(fig.Curves, Curve{Label: s.label, X: r, Y: temp, Dash: s.dash})
	}

	return fig, nil
}

func newFigure(name string, cfg Config) *Figure {
	return &Figure{
		Name:   name,
		XMin:   cfg.RMin,
		XMax:   cfg.RMax,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
