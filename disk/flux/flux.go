// Package flux computes the radial flux and effective temperature profile
// of a geometrically thin, optically thick accretion disk.
//
// DiskFlux is the bare Newtonian scaling 3 G M Mdot / (8 pi R^3). The
// inner boundary and relativistic effects enter as multiplicative factors:
// 1 - sqrt(r0/r) for the classical disk, or R_R from package relcorr for
// the Page & Thorne disk. Profile combines them.
package flux

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-disk/disk/cgs"
	"github.com/cwbudde/algo-disk/disk/kerr"
	"github.com/cwbudde/algo-disk/disk/relcorr"
	"github.com/cwbudde/algo-disk/internal/vec"
)

var (
	// ErrInvalidMass is returned for masses that are not finite and > 0.
	ErrInvalidMass = errors.New("flux: mass must be finite and > 0")
	// ErrInvalidAccretionRate is returned for accretion rates that are not
	// finite and > 0.
	ErrInvalidAccretionRate = errors.New("flux: accretion rate must be finite and > 0")
)

// AccretionRate converts an Eddington-scaled rate into g/s:
// Mdot = mdot * L_Edd / (eta c^2), with eta the radiative efficiency of
// the given spin.
func AccretionRate(mass, mdot, spin float64) (float64, error) {
	if err := checkSource(mass, mdot, spin); err != nil {
		return 0, err
	}

	eta := kerr.Efficiency(spin)

	return mdot * cgs.EddingtonLuminosity(mass) / (eta * cgs.SpeedOfLight * cgs.SpeedOfLight), nil
}

// DiskFlux returns the flux in erg s^-1 cm^-2 emitted by one face of the
// disk at each radius (gravitational radii) for a hole of mass solar
// masses accreting at mdot Eddington units. The result excludes the
// inner-boundary and relativistic correction, which comes from relcorr.
func DiskFlux(mass, mdot float64, radius []float64, spin float64) ([]float64, error) {
	rate, err := AccretionRate(mass, mdot, spin)
	if err != nil {
		return nil, err
	}

	return bareFlux(mass, rate, radius)
}

func bareFlux(mass, rate float64, radius []float64) ([]float64, error) {
	out := make([]float64, len(radius))
	for i, r := range radius {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: r[%d] = %v", relcorr.ErrInvalidRadius, i, r)
		}

		out[i] = 1 / (r * r * r)
	}

	rg := cgs.GravitationalRadius(mass)
	scale := 3 * cgs.Gravitational * mass * cgs.SolarMass * rate / (8 * math.Pi * rg * rg * rg)
	if err := vec.Scale(out, out, scale); err != nil {
		return nil, err
	}

	return out, nil
}

func checkSource(mass, mdot, spin float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMass, mass)
	}

	if !(mdot > 0) || math.IsInf(mdot, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAccretionRate, mdot)
	}

	return kerr.Validate(spin)
}

// Profile evaluates corrected disk fluxes for one black hole.
type Profile struct {
	cfg  Config
	rate float64 // g/s
	r0   float64
}

// NewProfile creates a profile from the default config and options.
func NewProfile(opts ...Option) (*Profile, error) {
	cfg := ApplyOptions(opts...)

	rate, err := AccretionRate(cfg.Mass, cfg.AccretionRate, cfg.Spin)
	if err != nil {
		return nil, err
	}

	return &Profile{
		cfg:  cfg,
		rate: rate,
		r0:   kerr.MarginallyStable(cfg.Spin),
	}, nil
}

// Config returns the profile configuration.
func (p *Profile) Config() Config {
	return p.cfg
}

// InnerRadius returns the inner disk edge in gravitational radii.
func (p *Profile) InnerRadius() float64 {
	return p.r0
}

// MassAccretionRate returns the accretion rate in g/s.
func (p *Profile) MassAccretionRate() float64 {
	return p.rate
}

// Bare returns DiskFlux for the profile's hole.
func (p *Profile) Bare(r []float64) ([]float64, error) {
	return bareFlux(p.cfg.Mass, p.rate, r)
}

// Newtonian returns the classical disk flux with a zero-torque inner edge
// at the marginally stable orbit.
func (p *Profile) Newtonian(r []float64) ([]float64, error) {
	f, err := p.Bare(r)
	if err != nil {
		return nil, err
	}

	corr, err := relcorr.Newtonian(r, p.r0)
	if err != nil {
		return nil, err
	}

	if err := vec.Mul(f, f, corr); err != nil {
		return nil, err
	}

	return f, nil
}

// Relativistic returns the Page & Thorne disk flux.
func (p *Profile) Relativistic(r []float64) ([]float64, error) {
	f, err := p.Bare(r)
	if err != nil {
		return nil, err
	}

	rr, err := relcorr.FluxFactor(p.cfg.Spin, r)
	if err != nil {
		return nil, err
	}

	if err := vec.Mul(f, f, rr); err != nil {
		return nil, err
	}

	return f, nil
}

// Temperature returns the effective temperature (F / sigma)^(1/4) in K of
// the Page & Thorne disk.
func (p *Profile) Temperature(r []float64) ([]float64, error) {
	f, err := p.Relativistic(r)
	if err != nil {
		return nil, err
	}

	for i, v := range f {
		f[i] = math.Sqrt(math.Sqrt(v / cgs.StefanBoltz))
	}

	return f, nil
}
