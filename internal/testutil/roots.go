package testutil

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrNoConvergence is returned by RealRoots when the iteration does not
// settle on a set of roots.
var ErrNoConvergence = errors.New("testutil: root iteration did not converge")

// RealRoots returns the real roots of a real polynomial, coefficients in
// descending power order, sorted ascending. It runs a Weierstrass
// (Durand-Kerner) iteration and keeps roots whose imaginary part is within
// tol of zero relative to their magnitude. It is an independent
// cross-check for closed-form solvers, not a production root finder.
func RealRoots(coeff []float64, tol float64) ([]float64, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrNoConvergence
	}

	monic := make([]complex128, len(coeff))
	for i, c := range coeff {
		monic[i] = complex(c/coeff[0], 0)
	}

	degree := len(coeff) - 1
	z := make([]complex128, degree)

	// Seeds on a circle, rotated off the real axis so that no two coincide.
	seed := complex(0.4, 0.9)
	z[0] = 1
	for i := 1; i < degree; i++ {
		z[i] = z[i-1] * seed
	}

	converged := false
	for range 1000 {
		step := 0.0

		for i := range z {
			den := complex(1, 0)
			for j := range z {
				if j != i {
					den *= z[i] - z[j]
				}
			}

			if den == 0 {
				continue
			}

			delta := horner(monic, z[i]) / den
			z[i] -= delta
			step = math.Max(step, cmplx.Abs(delta))
		}

		if step < 1e-14 {
			converged = true

			break
		}
	}

	if !converged {
		return nil, ErrNoConvergence
	}

	out := make([]float64, 0, degree)
	for _, r := range z {
		if math.Abs(imag(r)) <= tol*math.Max(1, cmplx.Abs(r)) {
			out = append(out, real(r))
		}
	}

	sort.Float64s(out)

	return out, nil
}

func horner(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for _, c := range coeff[1:] {
		v = v*x + c
	}

	return v
}
