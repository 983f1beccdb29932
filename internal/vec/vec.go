// Package vec provides the elementwise slice helpers the disk packages
// share: log-spaced grids, threshold masking and integer powers.
package vec

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when paired slices differ in length.
var ErrLengthMismatch = errors.New("vec: length mismatch")

// LogSpace returns n points evenly spaced in log between start and stop.
// Both endpoints are returned exactly.
func LogSpace(start, stop float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("logspace points must be > 0: %d", n)
	}

	if !(start > 0) || !(stop > 0) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("logspace bounds must be finite and > 0: [%v, %v]", start, stop)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start

		return out, nil
	}

	floats.LogSpan(out, start, stop)

	// LogSpan goes through exp(log(x)); keep the bounds bit-exact.
	out[0] = start
	out[n-1] = stop

	return out, nil
}

// ZeroBelow sets dst[i] = 0 wherever x[i] < threshold. NaN entries of x
// are left untouched.
func ZeroBelow(dst, x []float64, threshold float64) error {
	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst %d, x %d", ErrLengthMismatch, len(dst), len(x))
	}

	for i, v := range x {
		if v < threshold {
			dst[i] = 0
		}
	}

	return nil
}

// ClampMin raises every element of dst below floor to floor in place.
func ClampMin(dst []float64, floor float64) {
	for i, v := range dst {
		if v < floor {
			dst[i] = floor
		}
	}
}

// Pow4 writes src^4 into dst elementwise. dst may alias src.
func Pow4(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	vecmath.MulBlock(dst, src, src)
	vecmath.MulBlockInPlace(dst, dst)

	return nil
}

// Mul writes a*b into dst elementwise.
func Mul(dst, a, b []float64) error {
	if len(dst) != len(a) || len(a) != len(b) {
		return fmt.Errorf("%w: dst %d, a %d, b %d", ErrLengthMismatch, len(dst), len(a), len(b))
	}

	vecmath.MulBlock(dst, a, b)

	return nil
}

// Scale writes src*k into dst elementwise.
func Scale(dst, src []float64, k float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	vecmath.ScaleBlock(dst, src, k)

	return nil
}
