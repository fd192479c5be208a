package orrery

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/vsop87/vsop87d"
)

func TestComputeSnapshot(t *testing.T) {
	const j2000 = 2451545.0
	snap := Compute(j2000)

	if snap.JD != j2000 {
		t.Errorf("snapshot JD = %v, want %v", snap.JD, j2000)
	}
	if len(snap.Bodies) != 9 {
		t.Fatalf("snapshot has %d bodies, want 9 (Sun + 8 planets)", len(snap.Bodies))
	}

	sun := snap.Body("SUN")
	if sun == nil {
		t.Fatal("no SUN body in snapshot")
	}
	if sun.Pos.Norm() != 0 {
		t.Errorf("Sun position = %v, want origin", sun.Pos)
	}

	planets := snap.Planets()
	if len(planets) != 8 {
		t.Fatalf("snapshot has %d planets, want 8", len(planets))
	}

	// Heliocentric order must be preserved.
	for i, want := range vsop87d.AllPlanets {
		if planets[i].Planet != want {
			t.Errorf("planet[%d] = %v, want %v", i, planets[i].Planet, want)
		}
	}
}

func TestComputeDistances(t *testing.T) {
	// Heliocentric distance must stay within the planet's perihelion and
	// aphelion range, with slack for the truncated tables.
	tests := []struct {
		code     string
		min, max float64 // AU
	}{
		{"MERC", 0.30, 0.47},
		{"VEN", 0.71, 0.74},
		{"EARTH", 0.97, 1.02},
		{"MARS", 1.35, 1.70},
		{"JUP", 4.9, 5.5},
		{"SAT", 8.9, 10.2},
		{"URA", 18.2, 20.2},
		{"NEP", 29.7, 30.5},
	}

	jds := []float64{2415020.5, 2451545.0, 2460676.5}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			for _, jd := range jds {
				b := Compute(jd).Body(tt.code)
				if b == nil {
					t.Fatalf("no %s body", tt.code)
				}
				if d := b.DistanceAU(); d < tt.min || d > tt.max {
					t.Errorf("JD %.1f: distance %.4f AU outside [%.2f, %.2f]", jd, d, tt.min, tt.max)
				}
			}
		})
	}
}

func TestSphericalToRectConsistency(t *testing.T) {
	// The rectangular position must reproduce the spherical solution.
	snap := Compute(2459000.5)
	for _, b := range snap.Planets() {
		if math.Abs(b.Pos.Norm()-b.Coord.Dist) > 1e-9 {
			t.Errorf("%s: |Pos| = %.12f, Dist = %.12f", b.Name, b.Pos.Norm(), b.Coord.Dist)
		}
		lon := math.Atan2(b.Pos.Y, b.Pos.X)
		if lon < 0 {
			lon += 2 * math.Pi
		}
		if math.Abs(lon-b.Coord.Lon) > 1e-9 {
			t.Errorf("%s: rect lon = %.12f, spherical lon = %.12f", b.Name, lon, b.Coord.Lon)
		}
	}
}

func TestComputeAt(t *testing.T) {
	at := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	snap := ComputeAt(at)
	if math.Abs(snap.JD-2451545.0) > 1e-6 {
		t.Errorf("ComputeAt(J2000) JD = %.6f, want 2451545.0", snap.JD)
	}
	if got := snap.Time.Sub(at); got < -time.Second || got > time.Second {
		t.Errorf("snapshot time = %v, want %v", snap.Time, at)
	}
}

func TestBodyNotFound(t *testing.T) {
	snap := Compute(2451545.0)
	if b := snap.Body("PLUTO"); b != nil {
		t.Errorf("Body(PLUTO) = %v, want nil", b)
	}
}
