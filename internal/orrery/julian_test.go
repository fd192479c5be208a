package orrery

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
	}{
		{
			name: "J2000 epoch",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "2000-01-01 midnight",
			time: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 2451544.5,
		},
		{
			name: "1987-06-19 12:00",
			time: time.Date(1987, 6, 19, 12, 0, 0, 0, time.UTC),
			want: 2446966.0,
		},
		{
			name: "2024-03-20 12:00",
			time: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
			want: 2460390.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.time)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDay(%v) = %.6f, want %.6f", tt.time, got, tt.want)
			}
		})
	}
}

func TestTimeFromJulianDay(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		want time.Time
	}{
		{
			name: "J2000 epoch",
			jd:   2451545.0,
			want: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "half day",
			jd:   2451544.5,
			want: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "quarter day",
			jd:   2460390.25,
			want: time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeFromJulianDay(tt.jd)
			if diff := got.Sub(tt.want); diff < -time.Second || diff > time.Second {
				t.Errorf("TimeFromJulianDay(%.2f) = %v, want %v", tt.jd, got, tt.want)
			}
		})
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 6, 30, 15, 0, time.UTC),
		time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, want := range times {
		got := TimeFromJulianDay(JulianDay(want))
		if diff := got.Sub(want); diff < -time.Second || diff > time.Second {
			t.Errorf("round trip %v -> %v, drift %v", want, got, diff)
		}
	}
}
