package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTableModelView(t *testing.T) {
	m := NewTableModel()
	m = m.SetSize(100, 30)
	m = m.UpdateData(testSnapshot())

	view := m.View()

	for _, name := range []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"} {
		if !strings.Contains(view, name) {
			t.Errorf("table should list %s", name)
		}
	}
	if !strings.Contains(view, "JD 2451545.00000") {
		t.Error("table should show the Julian Day")
	}
}

func TestTableModelSelection(t *testing.T) {
	m := NewTableModel()
	m = m.UpdateData(testSnapshot())

	sel := m.Selected()
	if sel == nil || sel.Name != "Mercury" {
		t.Fatalf("initial selection = %v, want Mercury", sel)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if sel = m.Selected(); sel == nil || sel.Name != "Venus" {
		t.Errorf("after j, selection = %v, want Venus", sel)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if sel = m.Selected(); sel == nil || sel.Name != "Mercury" {
		t.Errorf("after k, selection = %v, want Mercury", sel)
	}

	// Selection clamps at the ends
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if sel = m.Selected(); sel == nil || sel.Name != "Mercury" {
		t.Errorf("selection should clamp at Mercury, got %v", sel)
	}
}

func TestTableModelUnitToggle(t *testing.T) {
	m := NewTableModel()
	m = m.SetSize(100, 30)
	m = m.UpdateData(testSnapshot())

	if !m.degrees {
		t.Fatal("expected degrees by default")
	}
	if !strings.Contains(m.View(), "deg") {
		t.Error("view should show deg unit by default")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	if m.degrees {
		t.Error("expected radians after toggle")
	}
	if !strings.Contains(m.View(), "rad") {
		t.Error("view should show rad unit after toggle")
	}
}
