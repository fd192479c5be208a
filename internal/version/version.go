// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Terminal orrery with play/pause clock, positions table, headless modes
// 0.1.0 - Initial release: VSOP87D engine, eight-planet tables, Julian Day helpers
