package orrery

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectTopDown(t *testing.T) {
	cfg := DefaultProjectionConfig()

	tests := []struct {
		name      string
		v         Vec3
		wantAngle float64 // expected angle in degrees
		wantR     float64 // expected true distance
	}{
		{
			name:      "1 AU along +X",
			v:         Vec3{1, 0, 0},
			wantAngle: 0,
			wantR:     1,
		},
		{
			name:      "1 AU along +Y",
			v:         Vec3{0, 1, 0},
			wantAngle: 90,
			wantR:     1,
		},
		{
			name:      "1 AU along -X",
			v:         Vec3{-1, 0, 0},
			wantAngle: 180,
			wantR:     1,
		},
		{
			name:      "5 AU at 45 degrees",
			v:         Vec3{5 / math.Sqrt(2), 5 / math.Sqrt(2), 0},
			wantAngle: 45,
			wantR:     5,
		},
		{
			name:      "10 AU with Z offset",
			v:         Vec3{10, 0, 2},
			wantAngle: 0,
			wantR:     math.Sqrt(104),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(tt.v, cfg)

			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			angleDiff := math.Abs(gotAngle - tt.wantAngle)
			if angleDiff > 180 {
				angleDiff = 360 - angleDiff
			}
			if angleDiff > 0.1 {
				t.Errorf("angle = %.2f°, want %.2f°", gotAngle, tt.wantAngle)
			}

			if math.Abs(got.R-tt.wantR) > 0.01 {
				t.Errorf("R = %.4f, want %.4f", got.R, tt.wantR)
			}
		})
	}
}

func TestScaleModes(t *testing.T) {
	tests := []struct {
		name string
		mode ScaleMode
		rAU  float64
	}{
		{"log 1AU", ScaleLogR, 1},
		{"log 20AU", ScaleLogR, 20},
		{"inner 1AU", ScaleInner, 1},
		{"inner 10AU", ScaleInner, 10}, // should clamp
		{"outer 1AU", ScaleOuter, 1},
		{"outer 20AU", ScaleOuter, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ProjectionConfig{Scale: 1.0, Mode: tt.mode}
			got := ProjectTopDown(Vec3{tt.rAU, 0, 0}, cfg)

			if got.X < 0 {
				t.Errorf("X should be positive for +X input, got %v", got.X)
			}
			if math.Abs(got.Y) > 1e-10 {
				t.Errorf("Y should be ~0 for X-axis input, got %v", got.Y)
			}

			rDisplay := math.Sqrt(got.X*got.X + got.Y*got.Y)
			if tt.mode == ScaleInner && tt.rAU > 5 && rDisplay > 5.01 {
				t.Errorf("ScaleInner should clamp at 5, got %v for r=%v AU", rDisplay, tt.rAU)
			}
		})
	}
}

func TestScaleModesMonotonic(t *testing.T) {
	// Display radius must never decrease with true radius, or orbit rings
	// would cross in the view.
	for _, mode := range []ScaleMode{ScaleLogR, ScaleInner, ScaleOuter} {
		cfg := ProjectionConfig{Scale: 1.0, Mode: mode}
		prev := -1.0
		for r := 0.0; r <= 35; r += 0.25 {
			cur := scaleRadius(r, cfg)
			if cur < prev-1e-12 {
				t.Errorf("mode %v: scaleRadius(%.2f) = %v < scaleRadius(prev) = %v", mode, r, cur, prev)
			}
			prev = cur
		}
	}
}
