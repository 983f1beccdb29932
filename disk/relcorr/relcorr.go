// Package relcorr computes the Page & Thorne (1973) relativistic
// corrections to the Newtonian thin-disk flux for a Kerr black hole.
//
// Factors returns the gravity correction qcor and the temperature
// correction tcor on a radius grid (gravitational radii). FluxFactor is
// Krolik's R_R = tcor^4, the ratio of the relativistic local flux to the
// bare Newtonian 3GM Mdot/(8 pi R^3). Newtonian is the classical
// no-torque profile 1 - sqrt(rin/r) used for comparison.
//
// All factors are zero inside the marginally stable orbit: the disk has
// no emitting material there.
package relcorr

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-disk/disk/kerr"
	"github.com/cwbudde/algo-disk/internal/vec"
)

// ErrInvalidRadius is returned for radii that are not finite and > 0.
var ErrInvalidRadius = errors.New("relcorr: radius must be finite and > 0")

// NewtonianInnerRadius is the Schwarzschild marginally stable orbit used
// by the classical comparison profile.
const NewtonianInnerRadius = 6.0

// kernel holds the spin-dependent terms of the flux integral.
type kernel struct {
	spin float64
	r0   float64
	x0   float64
	x    [3]float64 // roots of x^3 - 3x + 2a = 0
	c    [3]float64
}

func newKernel(spin float64) (kernel, error) {
	roots, err := kerr.CubicRoots(spin)
	if err != nil {
		return kernel{}, err
	}

	k := kernel{
		spin: spin,
		r0:   kerr.MarginallyStable(spin),
		x:    roots,
	}

	k.x0 = math.Sqrt(k.r0)

	for i := range 3 {
		xi := k.x[i]
		den := xi
		for j := range 3 {
			if j != i {
				den *= xi - k.x[j]
			}
		}
		// For a = 0 one root is ~0 and so is its numerator; the limit is 0.
		if den != 0 {
			k.c[i] = 3 * (xi - spin) * (xi - spin) / den
		}
	}

	return k, nil
}

// at evaluates qcor and tcor at a single radius. Inside r0 the logarithms
// are undefined and the result is NaN; callers mask it.
func (k kernel) at(r float64) (qcor, tcor float64) {
	a2 := k.spin * k.spin
	r1 := 1 / r
	r2 := r1 * r1
	a2r2 := a2 * r2
	// sqrt(a^2/r^3): the orbit sign enters only through r0.
	ar32 := math.Sqrt(a2 * r2 * r1)

	b := 1 + ar32
	c := 1 - 3*r1 + 2*ar32

	qcor = (1 - 4*ar32 + 3*a2r2) / c

	x := math.Sqrt(r)
	x0 := k.x0
	fb := x - x0 - 1.5*k.spin*math.Log(x/x0)
	for i, xi := range k.x {
		fb -= k.c[i] * math.Log((x-xi)/(x0-xi))
	}

	// fb vanishes at r0; rounding just outside it must not turn into NaN.
	q := math.Max(fb, 0) * b * math.Sqrt(r1) / math.Sqrt(c)
	tcor = math.Pow(q/b/math.Sqrt(c), 0.25)

	return qcor, tcor
}

// Factors returns the gravity correction qcor and temperature correction
// tcor at each radius of r. Both are zero wherever r < r_ms(spin). The
// spin must lie in (-1, 1) and every radius must be finite and positive.
func Factors(spin float64, r []float64) (qcor, tcor []float64, err error) {
	if err := kerr.Validate(spin); err != nil {
		return nil, nil, err
	}

	if err := checkRadii(r); err != nil {
		return nil, nil, err
	}

	k, err := newKernel(spin)
	if err != nil {
		return nil, nil, err
	}

	qcor = make([]float64, len(r))
	tcor = make([]float64, len(r))
	for i, ri := range r {
		qcor[i], tcor[i] = k.at(ri)
	}

	if err := vec.ZeroBelow(qcor, r, k.r0); err != nil {
		return nil, nil, err
	}

	if err := vec.ZeroBelow(tcor, r, k.r0); err != nil {
		return nil, nil, err
	}

	return qcor, tcor, nil
}

// FluxFactor returns R_R = tcor^4 at each radius of r.
func FluxFactor(spin float64, r []float64) ([]float64, error) {
	_, tcor, err := Factors(spin, r)
	if err != nil {
		return nil, err
	}

	if err := vec.Pow4(tcor, tcor); err != nil {
		return nil, err
	}

	return tcor, nil
}

// Newtonian returns the classical no-torque profile 1 - sqrt(rin/r),
// clamped to zero inside rin.
func Newtonian(r []float64, rin float64) ([]float64, error) {
	if !(rin > 0) || math.IsInf(rin, 0) {
		return nil, fmt.Errorf("%w: inner radius %v", ErrInvalidRadius, rin)
	}

	if err := checkRadii(r); err != nil {
		return nil, err
	}

	out := make([]float64, len(r))
	for i, ri := range r {
		out[i] = 1 - math.Sqrt(rin/ri)
	}

	vec.ClampMin(out, 0)

	return out, nil
}

func checkRadii(r []float64) error {
	for i, v := range r {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: r[%d] = %v", ErrInvalidRadius, i, v)
		}
	}

	return nil
}
