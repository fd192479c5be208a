package ui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelViewSwitching(t *testing.T) {
	m := New(2451545.0)

	if m.viewMode != ViewOrrery {
		t.Errorf("initial view = %d, want ViewOrrery", m.viewMode)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(Model)
	if m.viewMode != ViewTable {
		t.Errorf("after '2', view = %d, want ViewTable", m.viewMode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.viewMode != ViewOrrery {
		t.Errorf("after tab, view = %d, want ViewOrrery", m.viewMode)
	}
}

func TestModelClockStep(t *testing.T) {
	m := New(2451545.0)
	rate := m.rate()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	m = updated.(Model)
	if math.Abs(m.jd-(2451545.0+rate)) > 1e-9 {
		t.Errorf("after '.', jd = %f, want %f", m.jd, 2451545.0+rate)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}})
	m = updated.(Model)
	if math.Abs(m.jd-2451545.0) > 1e-9 {
		t.Errorf("after ',', jd = %f, want %f", m.jd, 2451545.0)
	}
}

func TestModelClockPlayPause(t *testing.T) {
	m := New(2451545.0)

	if m.playing {
		t.Fatal("clock should start paused")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if !m.playing {
		t.Error("clock should run after space")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if m.playing {
		t.Error("clock should pause after second space")
	}
}

func TestModelRateStepping(t *testing.T) {
	m := New(2451545.0)
	initial := m.rate()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'>'}})
	m = updated.(Model)
	if m.rate() <= initial {
		t.Errorf("rate should increase after '>', got %f", m.rate())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'<'}})
	m = updated.(Model)
	if m.rate() != initial {
		t.Errorf("rate should return to %f after '<', got %f", initial, m.rate())
	}

	// Clamp at the slow end
	for i := 0; i < 10; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'<'}})
		m = updated.(Model)
	}
	if m.rate() != timeRates[0] {
		t.Errorf("rate should clamp at %f, got %f", timeRates[0], m.rate())
	}
}

func TestModelSnapshotFollowsClock(t *testing.T) {
	m := New(2451545.0)
	before := m.snapshot.Body("MERC").Coord.Lon

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	m = updated.(Model)
	after := m.snapshot.Body("MERC").Coord.Lon

	if before == after {
		t.Error("Mercury longitude should change after a clock step")
	}
	if math.Abs(m.snapshot.JD-m.jd) > 1e-9 {
		t.Errorf("snapshot JD %f should track model JD %f", m.snapshot.JD, m.jd)
	}
}

func TestModelViewRenders(t *testing.T) {
	m := New(2451545.0)

	// Before the first WindowSizeMsg the view is a placeholder.
	if got := m.View(); got != "Initializing..." {
		t.Errorf("unready view = %q", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	view := m.View()
	if len(view) == 0 {
		t.Error("expected non-empty view")
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{0.25, "6h"},
		{1, "1d"},
		{7, "7d"},
		{365.25, "1y"},
		{3652.5, "10y"},
	}

	for _, tt := range tests {
		if got := formatRate(tt.days); got != tt.want {
			t.Errorf("formatRate(%g) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
