package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SnapshotExport is the JSON-serializable representation of a snapshot.
type SnapshotExport struct {
	JulianDay float64      `json:"julian_day"`
	Time      time.Time    `json:"time"`
	Planets   []BodyExport `json:"planets"`
}

// BodyExport is a JSON-friendly planet representation.
type BodyExport struct {
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	LonRad float64 `json:"lon_rad"`
	LatRad float64 `json:"lat_rad"`
	LonDeg float64 `json:"lon_deg"`
	LatDeg float64 `json:"lat_deg"`
	DistAU float64 `json:"dist_au"`
}

// Export converts a snapshot to its exportable form. The Sun is implicit
// at the origin and omitted.
func (s Snapshot) Export() *SnapshotExport {
	export := &SnapshotExport{
		JulianDay: s.JD,
		Time:      s.Time,
	}
	for _, b := range s.Planets() {
		export.Planets = append(export.Planets, BodyExport{
			Name:   b.Name,
			Code:   b.Code,
			LonRad: b.Coord.Lon,
			LatRad: b.Coord.Lat,
			LonDeg: b.Coord.LonDeg(),
			LatDeg: b.Coord.LatDeg(),
			DistAU: b.Coord.Dist,
		})
	}
	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteTable writes a plain-text positions table for the snapshot.
func WriteTable(w io.Writer, s Snapshot) {
	fmt.Fprintf(w, "VSOP87D heliocentric positions at JD %.5f (%s)\n\n",
		s.JD, s.Time.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "%-10s %14s %14s %14s\n", "Planet", "Lon (deg)", "Lat (deg)", "Dist (AU)")

	for _, b := range s.Planets() {
		fmt.Fprintf(w, "%-10s %14.8f %14.8f %14.8f\n",
			b.Name, b.Coord.LonDeg(), b.Coord.LatDeg(), b.Coord.Dist)
	}
}
