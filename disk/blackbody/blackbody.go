// Package blackbody evaluates Planck's law in cgs units.
package blackbody

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-disk/disk/cgs"
)

// ErrNonPositiveTemperature is returned for temperatures that are not > 0.
var ErrNonPositiveTemperature = errors.New("blackbody: temperature must be > 0")

// WienFrequencyConstant is x in h*nu_peak = x*kB*T, the root of
// 3(1 - exp(-x)) = x.
const WienFrequencyConstant = 2.821439372122079

// Planck returns the spectral radiance B_nu(T) in erg s^-1 cm^-2 Hz^-1 sr^-1:
//
//	B_nu = 2 h nu^3 / (c^2 (exp(h nu / (kB T)) - 1))
//
// No validation is done; extreme inputs follow IEEE semantics.
func Planck(teff, nu float64) float64 {
	efact := math.Exp(cgs.Planck * nu / (cgs.Boltzmann * teff))
	return 2 * cgs.Planck * nu * nu * nu / (cgs.SpeedOfLight * cgs.SpeedOfLight * (efact - 1))
}

// Spectrum writes B_nu(teff) for each frequency of nu into dst.
func Spectrum(dst, nu []float64, teff float64) error {
	if !(teff > 0) {
		return fmt.Errorf("%w: %v", ErrNonPositiveTemperature, teff)
	}

	if len(dst) != len(nu) {
		return fmt.Errorf("blackbody: length mismatch: dst %d, nu %d", len(dst), len(nu))
	}

	for i, f := range nu {
		dst[i] = Planck(teff, f)
	}

	return nil
}

// PeakFrequency returns the frequency in Hz where B_nu(teff) peaks.
func PeakFrequency(teff float64) float64 {
	return WienFrequencyConstant * cgs.Boltzmann * teff / cgs.Planck
}
