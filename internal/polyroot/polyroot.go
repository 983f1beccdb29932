// Package polyroot provides the closed-form polynomial root finders used by
// the Kerr orbit geometry.
package polyroot

import (
	"errors"
	"math"
)

// ErrComplexRoots is returned by DepressedCubic when the cubic does not
// have three real roots.
var ErrComplexRoots = errors.New("polyroot: cubic has complex roots")

// DepressedCubic returns the three real roots of x^3 + p*x + q = 0 using the
// trigonometric (Viete) form
//
//	x_k = 2*sqrt(-p/3) * cos(acos(3q/(2p) * sqrt(-3/p))/3 - 2*pi*k/3)
//
// for k = 0, 1, 2. Roots come back in that order, which is descending when
// all three are distinct. It requires p < 0 and a non-positive
// discriminant 4p^3 + 27q^2.
func DepressedCubic(p, q float64) ([3]float64, error) {
	if !(p < 0) {
		return [3]float64{}, ErrComplexRoots
	}

	if 4*p*p*p+27*q*q > 0 {
		return [3]float64{}, ErrComplexRoots
	}

	m := 2 * math.Sqrt(-p/3)
	arg := 3 * q / (2 * p) * math.Sqrt(-3/p)

	// Rounding can push |arg| just past 1 for a double root.
	arg = math.Max(-1, math.Min(1, arg))
	theta := math.Acos(arg) / 3

	var roots [3]float64
	for k := range 3 {
		roots[k] = m * math.Cos(theta-2*math.Pi*float64(k)/3)
	}

	return roots, nil
}
