// Package vsop87 implements the series-evaluation engine shared by the
// VSOP87 planetary theories: the time normalization from a Julian Day to
// Julian millennia since J2000, the summation of truncated Poisson series,
// and the polynomial recombination of the per-power partial sums into
// heliocentric ecliptic spherical coordinates.
//
// The planet-facing API lives in the vsop87d subpackage; this package only
// knows how to evaluate a coefficient table, not which planet it belongs to.
package vsop87

import "math"

// J2000 is the Julian Day of the reference epoch, 2000 January 1.5 TD.
const J2000 = 2451545.0

// DaysPerMillennium is the number of Julian days in a Julian millennium,
// the time unit of the VSOP87 series argument.
const DaysPerMillennium = 365250.0

// JulianMillennia converts a Julian Day to Julian millennia elapsed since
// J2000. It is total over all finite inputs; non-finite values propagate
// per IEEE-754.
func JulianMillennia(jde float64) float64 {
	return (jde - J2000) / DaysPerMillennium
}

// Term is one addend of a Poisson series. The contribution of a term at
// time t (Julian millennia since J2000) is Amp * cos(Phase + Freq*t).
type Term struct {
	Amp   float64 // amplitude, radians or AU depending on the coordinate
	Phase float64 // phase at epoch, radians
	Freq  float64 // angular frequency, radians per Julian millennium
}

// seriesSum evaluates the partial sum of one (coordinate, power) slot.
// Accumulation is plain double precision in slice order; the truncation
// error of the theory dominates rounding by many orders of magnitude.
func seriesSum(t float64, terms []Term) float64 {
	var s float64
	for _, tm := range terms {
		s += tm.Amp * math.Cos(tm.Phase+tm.Freq*t)
	}
	return s
}

// Model is the coefficient table of one planet: for each of the three
// spherical coordinates, up to six term series indexed by the power of t
// they multiply. Unpopulated powers are nil slices; which powers a planet
// populates is a property of the published theory and is preserved in the
// data rather than handled in code.
type Model struct {
	L [6][]Term // ecliptic longitude series, radians
	B [6][]Term // ecliptic latitude series, radians
	R [6][]Term // radius vector series, AU
}

// Position evaluates the model at the given Julian Day and returns
// heliocentric ecliptic spherical coordinates of date.
//
// Longitude is reduced modulo 2π and then, if negative, shifted up by 2π;
// the reduction alone can leave a negative remainder, so the fix-up is
// applied exactly once after it. Latitude and radius are returned as raw
// recombined sums.
func (m *Model) Position(jde float64) SphericalCoordinates {
	t := JulianMillennia(jde)

	var lp, bp, rp [6]float64
	for k := 0; k < 6; k++ {
		lp[k] = seriesSum(t, m.L[k])
		bp[k] = seriesSum(t, m.B[k])
		rp[k] = seriesSum(t, m.R[k])
	}

	l := horner(t, lp)
	b := horner(t, bp)
	r := horner(t, rp)

	l = math.Mod(l, 2*math.Pi)
	if l < 0 {
		l += 2 * math.Pi
	}

	return SphericalCoordinates{Lon: l, Lat: b, Dist: r}
}

// horner recombines the per-power partial sums into a polynomial in t.
func horner(t float64, p [6]float64) float64 {
	s := p[5]
	for k := 4; k >= 0; k-- {
		s = s*t + p[k]
	}
	return s
}

// SphericalCoordinates are heliocentric ecliptic spherical coordinates:
// the position of a body as seen from the Sun, referenced to the ecliptic
// plane. Values are plain data with no identity beyond the three fields.
type SphericalCoordinates struct {
	Lon  float64 // ecliptic longitude, radians, in [0, 2π)
	Lat  float64 // ecliptic latitude, radians
	Dist float64 // distance from the Sun, AU
}

// LonDeg returns the ecliptic longitude in degrees.
func (c SphericalCoordinates) LonDeg() float64 {
	return c.Lon * 180 / math.Pi
}

// LatDeg returns the ecliptic latitude in degrees.
func (c SphericalCoordinates) LatDeg() float64 {
	return c.Lat * 180 / math.Pi
}
