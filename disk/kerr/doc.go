// Package kerr provides the orbit geometry of equatorial circular orbits
// around a Kerr black hole that the thin-disk corrections rely on.
//
// Radii are dimensionless, in units of the gravitational radius GM/c^2.
// The spin a* must lie in the open interval (-1, 1); negative values
// describe retrograde disks.
//
//   - MarginallyStable: innermost stable circular orbit (Bardeen, Press &
//     Teukolsky 1972)
//   - CubicRoots: roots of x^3 - 3x + 2a* = 0 used by the Page & Thorne
//     (1973) flux integral
//   - Efficiency: radiative efficiency 1 - E(r_ms)
//
// # Usage
//
//	r0, err := kerr.InnerEdge(0.99)
//	eta := kerr.Efficiency(0.99)
package kerr
