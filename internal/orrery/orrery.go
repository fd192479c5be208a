// Package orrery turns VSOP87D solutions into solar system snapshots for
// display: heliocentric ecliptic vectors, a top-down projection, and Julian
// Day conversions.
package orrery

import (
	"math"
	"time"

	"github.com/litescript/vsop87"
	"github.com/litescript/vsop87/vsop87d"
)

// BodyKind categorizes bodies for rendering.
type BodyKind int

const (
	BodySun BodyKind = iota
	BodyPlanet
)

// String returns the body kind name.
func (k BodyKind) String() string {
	switch k {
	case BodySun:
		return "sun"
	case BodyPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// PlanetClass categorizes planets for rendering glyphs.
type PlanetClass int

const (
	ClassInner PlanetClass = iota // Mercury, Venus, Earth, Mars
	ClassGiant                    // Jupiter, Saturn, Uranus, Neptune
)

// Body is one solar system body at a single instant, carrying both the
// raw spherical solution and its rectangular equivalent.
type Body struct {
	Name   string
	Code   string // Short code (e.g., "MERC")
	Kind   BodyKind
	Class  PlanetClass
	Planet vsop87d.Planet // valid when Kind == BodyPlanet
	Coord  vsop87.SphericalCoordinates
	Pos    Vec3 // heliocentric ecliptic, AU
}

// DistanceAU returns the heliocentric distance in AU.
func (b Body) DistanceAU() float64 {
	return b.Coord.Dist
}

// Snapshot is the state of the solar system at one Julian Day.
type Snapshot struct {
	JD     float64
	Time   time.Time
	Bodies []Body
}

// Body returns a body by code, or nil if not found.
func (s Snapshot) Body(code string) *Body {
	for i := range s.Bodies {
		if s.Bodies[i].Code == code {
			return &s.Bodies[i]
		}
	}
	return nil
}

// Planets returns all planet bodies in heliocentric order.
func (s Snapshot) Planets() []Body {
	var planets []Body
	for _, b := range s.Bodies {
		if b.Kind == BodyPlanet {
			planets = append(planets, b)
		}
	}
	return planets
}

// planetDef carries per-planet display metadata.
type planetDef struct {
	planet vsop87d.Planet
	code   string
	class  PlanetClass
}

var planetDefs = []planetDef{
	{vsop87d.Mercury, "MERC", ClassInner},
	{vsop87d.Venus, "VEN", ClassInner},
	{vsop87d.Earth, "EARTH", ClassInner},
	{vsop87d.Mars, "MARS", ClassInner},
	{vsop87d.Jupiter, "JUP", ClassGiant},
	{vsop87d.Saturn, "SAT", ClassGiant},
	{vsop87d.Uranus, "URA", ClassGiant},
	{vsop87d.Neptune, "NEP", ClassGiant},
}

// Compute evaluates all eight planets at the given Julian Day. The Sun sits
// at the origin and leads the body list.
func Compute(jd float64) Snapshot {
	bodies := make([]Body, 0, len(planetDefs)+1)
	bodies = append(bodies, Body{Name: "Sun", Code: "SUN", Kind: BodySun})

	for _, def := range planetDefs {
		coord := def.planet.Position(jd)
		bodies = append(bodies, Body{
			Name:   def.planet.String(),
			Code:   def.code,
			Kind:   BodyPlanet,
			Class:  def.class,
			Planet: def.planet,
			Coord:  coord,
			Pos:    sphericalToRect(coord),
		})
	}

	return Snapshot{
		JD:     jd,
		Time:   TimeFromJulianDay(jd),
		Bodies: bodies,
	}
}

// ComputeAt evaluates the snapshot for a civil time.
func ComputeAt(t time.Time) Snapshot {
	return Compute(JulianDay(t))
}

// sphericalToRect converts a heliocentric ecliptic spherical solution to
// rectangular coordinates in the same frame.
func sphericalToRect(c vsop87.SphericalCoordinates) Vec3 {
	cosB := math.Cos(c.Lat)
	return Vec3{
		X: c.Dist * cosB * math.Cos(c.Lon),
		Y: c.Dist * cosB * math.Sin(c.Lon),
		Z: c.Dist * math.Sin(c.Lat),
	}
}
