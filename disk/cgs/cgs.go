// Package cgs holds the physical constants shared by the disk packages,
// expressed in centimetre-gram-second units.
package cgs

import "math"

const (
	Planck        = 6.62607015e-27 // h [erg s]
	Boltzmann     = 1.380649e-16   // kB [erg K^-1]
	SpeedOfLight  = 2.99792458e10  // c [cm s^-1]
	Gravitational = 6.67430e-8     // G [cm^3 g^-1 s^-2]
	SolarMass     = 1.99e33        // Msun [g]
	OpacityES     = 0.34           // electron scattering opacity [cm^2 g^-1]
	StefanBoltz   = 5.670374419e-5 // sigma [erg cm^-2 s^-1 K^-4]
)

// GravitationalRadius returns GM/c^2 in cm for a mass given in solar masses.
func GravitationalRadius(massSolar float64) float64 {
	return Gravitational * massSolar * SolarMass / (SpeedOfLight * SpeedOfLight)
}

// EddingtonLuminosity returns 4 pi G M c / kappa_es in erg/s for a mass
// given in solar masses.
func EddingtonLuminosity(massSolar float64) float64 {
	return 4 * math.Pi * Gravitational * massSolar * SolarMass * SpeedOfLight / OpacityES
}
