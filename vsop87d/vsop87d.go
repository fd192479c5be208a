// Package vsop87d computes heliocentric ecliptic spherical coordinates for
// the equinox of the day for the eight major planets, using the VSOP87D
// variant of the VSOP87 planetary theory.
//
// Each planet function takes a Julian Day and returns the planet's ecliptic
// longitude and latitude in radians and its distance from the Sun in AU.
// The functions are pure: no state, no I/O, no error paths. Non-finite
// input propagates NaN through the result rather than being rejected.
//
// The embedded coefficient tables are the published truncation of the
// theory ordered by amplitude, one source file per planet.
package vsop87d

import "github.com/litescript/vsop87"

// terms shortens the per-planet table literals.
type terms = []vsop87.Term

// Planet identifies one of the eight major planets, ordered by distance
// from the Sun.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// AllPlanets lists the planets in heliocentric order.
var AllPlanets = []Planet{
	Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune,
}

// String returns the planet's English name.
func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	default:
		return "unknown"
	}
}

// models indexes the per-planet coefficient tables by Planet.
var models = [...]*vsop87.Model{
	Mercury: &mercuryModel,
	Venus:   &venusModel,
	Earth:   &earthModel,
	Mars:    &marsModel,
	Jupiter: &jupiterModel,
	Saturn:  &saturnModel,
	Uranus:  &uranusModel,
	Neptune: &neptuneModel,
}

// Position returns the VSOP87D solution for any planet. It lets hosts
// iterate AllPlanets without naming the per-planet functions.
func (p Planet) Position(jde float64) vsop87.SphericalCoordinates {
	return models[p].Position(jde)
}

// MercuryPosition calculates the VSOP87D solution for Mercury at the given
// Julian Day: heliocentric ecliptic spherical coordinates with the Sun at
// the center and the ecliptic plane as latitude zero.
func MercuryPosition(jde float64) vsop87.SphericalCoordinates {
	return mercuryModel.Position(jde)
}

// VenusPosition calculates the VSOP87D solution for Venus.
func VenusPosition(jde float64) vsop87.SphericalCoordinates {
	return venusModel.Position(jde)
}

// EarthPosition calculates the VSOP87D solution for Earth.
func EarthPosition(jde float64) vsop87.SphericalCoordinates {
	return earthModel.Position(jde)
}

// MarsPosition calculates the VSOP87D solution for Mars.
func MarsPosition(jde float64) vsop87.SphericalCoordinates {
	return marsModel.Position(jde)
}

// JupiterPosition calculates the VSOP87D solution for Jupiter.
func JupiterPosition(jde float64) vsop87.SphericalCoordinates {
	return jupiterModel.Position(jde)
}

// SaturnPosition calculates the VSOP87D solution for Saturn.
func SaturnPosition(jde float64) vsop87.SphericalCoordinates {
	return saturnModel.Position(jde)
}

// UranusPosition calculates the VSOP87D solution for Uranus.
func UranusPosition(jde float64) vsop87.SphericalCoordinates {
	return uranusModel.Position(jde)
}

// NeptunePosition calculates the VSOP87D solution for Neptune.
func NeptunePosition(jde float64) vsop87.SphericalCoordinates {
	return neptuneModel.Position(jde)
}
