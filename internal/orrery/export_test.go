package orrery

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshotExport(t *testing.T) {
	snap := Compute(2451545.0)
	export := snap.Export()

	if export.JulianDay != 2451545.0 {
		t.Errorf("export JD = %v, want 2451545.0", export.JulianDay)
	}
	if len(export.Planets) != 8 {
		t.Fatalf("export has %d planets, want 8", len(export.Planets))
	}
	if export.Planets[0].Name != "Mercury" || export.Planets[7].Name != "Neptune" {
		t.Errorf("export order wrong: %s ... %s", export.Planets[0].Name, export.Planets[7].Name)
	}

	earth := export.Planets[2]
	if earth.DistAU < 0.97 || earth.DistAU > 1.02 {
		t.Errorf("Earth distance %v AU out of range", earth.DistAU)
	}
	if earth.LonDeg < 0 || earth.LonDeg >= 360 {
		t.Errorf("Earth longitude %v deg out of range", earth.LonDeg)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Compute(2451545.0).Export().WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Planets) != 8 {
		t.Errorf("decoded %d planets, want 8", len(decoded.Planets))
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, Compute(2451545.0))

	out := buf.String()
	for _, name := range []string{"Mercury", "Earth", "Neptune", "JD 2451545.00000"} {
		if !strings.Contains(out, name) {
			t.Errorf("table missing %q:\n%s", name, out)
		}
	}
}
