package vsop87d

import (
	"math"
	"testing"

	"github.com/litescript/vsop87"
)

// Reference positions from the full VSOP87D solution at epochs spaced 100
// years apart. The embedded tables are truncated to the leading published
// terms, so the tolerances are set by the truncation error (a few 1e-4 at
// these epochs) rather than by float64 precision.
func TestPlanetPositions(t *testing.T) {
	tests := []struct {
		name     string
		planet   Planet
		jde      float64
		wantLon  float64 // rad
		wantLat  float64 // rad
		wantDist float64 // AU
		angTol   float64 // rad, for lon and lat
		distTol  float64 // AU
	}{
		{
			name:     "Mercury 1799-12-30",
			planet:   Mercury,
			jde:      2378495.0,
			wantLon:  2.0737894888,
			wantLat:  0.1168184804,
			wantDist: 0.32339095,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Venus 1699-12-29",
			planet:   Venus,
			jde:      2341970.0,
			wantLon:  5.3115708036,
			wantLat:  -0.0455979904,
			wantDist: 0.72834075,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Earth 1599-12-29",
			planet:   Earth,
			jde:      2305445.0,
			wantLon:  1.7006065938,
			wantLat:  -0.0000016359,
			wantDist: 0.98312544,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Mars 1499-12-28",
			planet:   Mars,
			jde:      2268920.0,
			wantLon:  1.0050966939,
			wantLat:  0.0066676098,
			wantDist: 1.51236227,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Jupiter 1399-12-28",
			planet:   Jupiter,
			jde:      2232395.0,
			wantLon:  3.0889515350,
			wantLat:  0.0231157947,
			wantDist: 5.44915702,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Saturn 1299-12-27",
			planet:   Saturn,
			jde:      2195870.0,
			wantLon:  2.2948875823,
			wantLat:  0.0178533697,
			wantDist: 9.18575995,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Uranus 1199-12-27",
			planet:   Uranus,
			jde:      2159345.0,
			wantLon:  1.9333853935,
			wantLat:  0.0088045918,
			wantDist: 18.58415013,
			angTol:   1e-3,
			distTol:  1e-3,
		},
		{
			name:     "Neptune 1099-12-26",
			planet:   Neptune,
			jde:      2122820.0,
			wantLon:  2.2124988267,
			wantLat:  0.0027498093,
			wantDist: 30.06536936,
			angTol:   1e-3,
			distTol:  1e-3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.planet.Position(tt.jde)

			if math.Abs(got.Lon-tt.wantLon) > tt.angTol {
				t.Errorf("Position(%.1f) Lon = %.10f rad, want %.10f (±%.0e)",
					tt.jde, got.Lon, tt.wantLon, tt.angTol)
			}
			if math.Abs(got.Lat-tt.wantLat) > tt.angTol {
				t.Errorf("Position(%.1f) Lat = %.10f rad, want %.10f (±%.0e)",
					tt.jde, got.Lat, tt.wantLat, tt.angTol)
			}
			if math.Abs(got.Dist-tt.wantDist) > tt.distTol {
				t.Errorf("Position(%.1f) Dist = %.8f AU, want %.8f (±%.0e)",
					tt.jde, got.Dist, tt.wantDist, tt.distTol)
			}
		})
	}
}

// VSOP87D longitudes are referred to the mean equinox of date, so every
// planet's mean longitude rate (the constant leading the L1 series) runs
// ahead of its orbital fundamental (the frequency of the dominant periodic
// L0 term) by the general precession in longitude, about 0.24382 rad per
// Julian millennium. A table built against the fixed J2000 equinox would
// show a rate excess of zero here and drift out of frame at 0.0244 rad
// per century.
func TestMeanLongitudeRateIsOfDate(t *testing.T) {
	const precession = 0.24382 // rad per Julian millennium

	for _, p := range AllPlanets {
		t.Run(p.String(), func(t *testing.T) {
			m := models[p]
			rate := m.L[1][0]
			if rate.Phase != 0 || rate.Freq != 0 {
				t.Fatalf("L1 leading term = %+v, want a pure constant", rate)
			}
			fundamental := m.L[0][1].Freq

			excess := rate.Amp - fundamental
			if math.Abs(excess-precession) > 5e-3 {
				t.Errorf("mean longitude rate excess = %.5f rad/millennium, want ~%.5f",
					excess, precession)
			}
		})
	}
}

// The named per-planet functions must agree exactly with the generic
// Planet.Position dispatch.
func TestNamedFunctionsMatchDispatch(t *testing.T) {
	const jde = 2451545.0

	named := map[Planet]func(float64) vsop87.SphericalCoordinates{
		Mercury: MercuryPosition,
		Venus:   VenusPosition,
		Earth:   EarthPosition,
		Mars:    MarsPosition,
		Jupiter: JupiterPosition,
		Saturn:  SaturnPosition,
		Uranus:  UranusPosition,
		Neptune: NeptunePosition,
	}

	for _, p := range AllPlanets {
		t.Run(p.String(), func(t *testing.T) {
			want := p.Position(jde)
			got := named[p](jde)
			if got != want {
				t.Errorf("%sPosition(%.1f) = %+v, want %+v", p, jde, got, want)
			}
		})
	}
}

// Longitude must land in [0, 2π) for every planet across a wide span of
// dates, including far from the epoch where the linear term has wrapped
// many thousands of times.
func TestLongitudeRange(t *testing.T) {
	// J2000 ± 3000 years, stepped unevenly to avoid resonant sampling.
	jds := []float64{
		1355818.0, 1538100.5, 1720693.0, 1903147.25,
		2086302.0, 2268920.0, 2451545.0, 2634166.5,
		2816788.0, 2999410.75, 3182031.0, 3547274.0,
	}

	for _, p := range AllPlanets {
		t.Run(p.String(), func(t *testing.T) {
			for _, jde := range jds {
				got := p.Position(jde)
				if got.Lon < 0 || got.Lon >= 2*math.Pi {
					t.Errorf("Position(%.2f) Lon = %.15f, want in [0, 2π)", jde, got.Lon)
				}
				if got.Dist <= 0 {
					t.Errorf("Position(%.2f) Dist = %.8f, want > 0", jde, got.Dist)
				}
				if got.Lat < -math.Pi/2 || got.Lat > math.Pi/2 {
					t.Errorf("Position(%.2f) Lat = %.8f, want in [-π/2, π/2]", jde, got.Lat)
				}
			}
		})
	}
}

// Evaluation is pure: the same Julian Day always yields the bit-identical
// result.
func TestPositionDeterministic(t *testing.T) {
	for _, p := range AllPlanets {
		t.Run(p.String(), func(t *testing.T) {
			const jde = 2459000.5
			first := p.Position(jde)
			for i := 0; i < 3; i++ {
				if again := p.Position(jde); again != first {
					t.Fatalf("Position(%.1f) = %+v on repeat, want %+v", jde, again, first)
				}
			}
		})
	}
}

// Longitude over a short interval is continuous except for a single 2π
// drop where it wraps past the branch cut.
func TestLongitudeContinuity(t *testing.T) {
	// Mercury covers a full orbit in ~88 days, so a 100-day scan at a
	// quarter-day step is guaranteed to cross the wrap at least once.
	const (
		start = 2451545.0
		step  = 0.25
		n     = 400
	)

	prev := MercuryPosition(start).Lon
	wraps := 0
	for i := 1; i <= n; i++ {
		cur := MercuryPosition(start + float64(i)*step).Lon
		delta := cur - prev
		switch {
		case math.Abs(delta) < 0.05:
			// smooth advance
		case math.Abs(delta+2*math.Pi) < 0.05:
			wraps++
		default:
			t.Fatalf("longitude jump %.6f rad at step %d, want smooth or -2π wrap", delta, i)
		}
		prev = cur
	}
	if wraps == 0 {
		t.Error("no 2π wrap observed over a full Mercury orbit")
	}
}

// Non-finite input propagates NaN rather than being rejected.
func TestNonFiniteInput(t *testing.T) {
	got := EarthPosition(math.NaN())
	if !math.IsNaN(got.Lon) || !math.IsNaN(got.Lat) || !math.IsNaN(got.Dist) {
		t.Errorf("EarthPosition(NaN) = %+v, want NaN coordinates", got)
	}
}

func TestPlanetString(t *testing.T) {
	if got := Mercury.String(); got != "Mercury" {
		t.Errorf("Mercury.String() = %q, want %q", got, "Mercury")
	}
	if got := Neptune.String(); got != "Neptune" {
		t.Errorf("Neptune.String() = %q, want %q", got, "Neptune")
	}
	if got := Planet(99).String(); got != "unknown" {
		t.Errorf("Planet(99).String() = %q, want %q", got, "unknown")
	}
}

func BenchmarkEarthPosition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EarthPosition(2451545.0 + float64(i%365))
	}
}
