package orrery

import (
	"math"
	"time"
)

// JulianDay returns the Julian Day for a civil time, valid for the
// Gregorian calendar.
func JulianDay(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January and February count as months 13 and 14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// TimeFromJulianDay converts a Julian Day back to UTC civil time,
// inverting JulianDay for Gregorian dates.
func TimeFromJulianDay(jd float64) time.Time {
	z, f := math.Modf(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	// Split the day fraction into h/m/s/ns.
	secs := f * 86400
	h := int(secs / 3600)
	m := int(secs/60) % 60
	s := int(secs) % 60
	ns := int(math.Round((secs - math.Floor(secs)) * 1e9))
	if ns >= 1e9 {
		ns -= 1e9
		s++
	}

	return time.Date(int(year), time.Month(month), int(day), h, m, s, ns, time.UTC)
}
