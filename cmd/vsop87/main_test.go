package main

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/vsop87/internal/orrery"
)

func TestResolveEpoch(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		jd        float64
		jdSet     bool
		wantJD    float64
		wantFixed bool
		wantErr   bool
	}{
		{
			name:      "explicit jd",
			jd:        2451545.0,
			jdSet:     true,
			wantJD:    2451545.0,
			wantFixed: true,
		},
		{
			name:      "jd zero is a valid epoch",
			jd:        0,
			jdSet:     true,
			wantJD:    0,
			wantFixed: true,
		},
		{
			name:      "jd overrides date",
			date:      "2024-03-20",
			jd:        2451545.0,
			jdSet:     true,
			wantJD:    2451545.0,
			wantFixed: true,
		},
		{
			name:      "plain date",
			date:      "2000-01-01",
			wantJD:    2451544.5,
			wantFixed: true,
		},
		{
			name:      "RFC 3339 date",
			date:      "2000-01-01T12:00:00Z",
			wantJD:    2451545.0,
			wantFixed: true,
		},
		{
			name:    "unparseable date",
			date:    "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd, fixed, err := resolveEpoch(tt.date, tt.jd, tt.jdSet)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveEpoch(%q) succeeded, want error", tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveEpoch: %v", err)
			}
			if math.Abs(jd-tt.wantJD) > 1e-6 {
				t.Errorf("jd = %.6f, want %.6f", jd, tt.wantJD)
			}
			if fixed != tt.wantFixed {
				t.Errorf("fixed = %v, want %v", fixed, tt.wantFixed)
			}
		})
	}
}

func TestResolveEpochDefaultsToNow(t *testing.T) {
	jd, fixed, err := resolveEpoch("", 0, false)
	if err != nil {
		t.Fatalf("resolveEpoch: %v", err)
	}
	if fixed {
		t.Error("default epoch should not be pinned")
	}
	if now := orrery.JulianDay(time.Now()); math.Abs(jd-now) > 1.0/86400 {
		t.Errorf("jd = %.6f, want within a second of now (%.6f)", jd, now)
	}
}
