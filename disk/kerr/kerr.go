package kerr

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-disk/internal/polyroot"
)

// ErrSpinOutOfRange is returned for spins outside the open interval (-1, 1).
var ErrSpinOutOfRange = errors.New("kerr: spin must be in (-1, 1)")

// Validate reports ErrSpinOutOfRange unless -1 < spin < 1.
func Validate(spin float64) error {
	if !(spin > -1 && spin < 1) {
		return fmt.Errorf("%w: %v", ErrSpinOutOfRange, spin)
	}

	return nil
}

// Sign returns +1 for prograde (spin >= 0) and -1 for retrograde orbits.
func Sign(spin float64) float64 {
	if spin < 0 {
		return -1
	}

	return 1
}

// MarginallyStable returns the radius of the marginally stable circular
// orbit for the given spin. It accepts the closed interval [-1, 1], where
// the extremal holes give r0 = 1 and r0 = 9; anything else yields NaN.
func MarginallyStable(spin float64) float64 {
	if !(math.Abs(spin) <= 1) {
		return math.NaN()
	}

	a2 := spin * spin
	z1 := 1 + math.Cbrt(1-a2)*(math.Cbrt(1+spin)+math.Cbrt(1-spin))
	z2 := math.Sqrt(3*a2 + z1*z1)

	return 3 + z2 - Sign(spin)*math.Sqrt((3-z1)*(3+z1+2*z2))
}

// InnerEdge is MarginallyStable with the spin checked first.
func InnerEdge(spin float64) (float64, error) {
	if err := Validate(spin); err != nil {
		return 0, err
	}

	return MarginallyStable(spin), nil
}

// CubicRoots returns the three real roots of x^3 - 3x + 2*spin = 0 in the
// order x1 > x2 > x3 used by the Page & Thorne integral:
//
//	x1 =  2 cos(acos(a)/3 - pi/3)
//	x2 =  2 cos(acos(a)/3 + pi/3)
//	x3 = -2 cos(acos(a)/3)
func CubicRoots(spin float64) ([3]float64, error) {
	if err := Validate(spin); err != nil {
		return [3]float64{}, err
	}

	roots, err := polyroot.DepressedCubic(-3, 2*spin)
	if err != nil {
		return [3]float64{}, fmt.Errorf("kerr: cubic roots for spin %v: %w", spin, err)
	}

	return roots, nil
}

// Efficiency returns the radiative efficiency eta = 1 - E(r0), the binding
// energy per unit rest mass released by matter reaching the marginally
// stable orbit. Out-of-range spins yield NaN.
func Efficiency(spin float64) float64 {
	r0 := MarginallyStable(spin)
	sq := math.Sqrt(r0)

	return 1 - (r0*r0-2*r0+spin*sq)/r0/math.Sqrt(r0*r0-3*r0+2*spin*sq)
}
