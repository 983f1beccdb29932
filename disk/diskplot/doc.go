// Package diskplot builds the named disk figures and renders them with
// gonum/plot.
//
// A Figure is plain data (labelled curves plus axis settings) so it can be
// inspected without rendering; Figure.Plot converts it to a *plot.Plot and
// Figure.Save writes an image whose format follows the file extension.
//
// Figures:
//
//   - rr: Krolik's R_R = tcor^4 for a* = 0 and a* = 0.99 against the
//     Newtonian 1 - sqrt(6/r), log radius axis
//   - blackbody: Planck spectra for 10^4, 10^5 and 10^6 K
//   - teff: Page & Thorne effective temperature of a 10 Msun disk at a
//     tenth of Eddington for a* = 0 and a* = 0.99
//
// # Usage
//
//	fig, err := diskplot.Build("rr")
//	if err != nil {
//		return err
//	}
//	err = fig.Save("rr.png")
package diskplot
