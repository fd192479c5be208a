package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/vsop87/internal/orrery"
)

func testSnapshot() orrery.Snapshot {
	return orrery.Compute(2451545.0)
}

func TestOrreryModelInit(t *testing.T) {
	m := NewOrreryModel()

	if m.focusIdx != -1 {
		t.Errorf("expected focusIdx -1 (Sun), got %d", m.focusIdx)
	}
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0, got %f", m.scale())
	}
	if m.scaleMode != orrery.ScaleLogR {
		t.Errorf("expected ScaleLogR, got %d", m.scaleMode)
	}
}

func TestOrreryModelSetSize(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(120, 40)

	if m.width != 120 {
		t.Errorf("expected width 120, got %d", m.width)
	}
	if m.height != 40 {
		t.Errorf("expected height 40, got %d", m.height)
	}
}

func TestOrreryModelFocusNavigation(t *testing.T) {
	m := NewOrreryModel()
	m = m.UpdateData(testSnapshot())

	// Focus starts on Sun (index -1)
	if m.focusIdx != -1 {
		t.Errorf("expected focusIdx -1, got %d", m.focusIdx)
	}

	// Navigate next (k)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.focusIdx != 0 {
		t.Errorf("after next, expected focusIdx 0, got %d", m.focusIdx)
	}

	// Navigate next again
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.focusIdx != 1 {
		t.Errorf("after next again, expected focusIdx 1, got %d", m.focusIdx)
	}

	// Navigate prev (j)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focusIdx != 0 {
		t.Errorf("after prev, expected focusIdx 0, got %d", m.focusIdx)
	}
}

func TestOrreryModelZoom(t *testing.T) {
	m := NewOrreryModel()

	if m.scale() != 1.0 {
		t.Errorf("expected initial scale 1.0, got %f", m.scale())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if m.scale() != 1.5 {
		t.Errorf("expected scale 1.5 after zoom in, got %f", m.scale())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after zoom out, got %f", m.scale())
	}

	// Reset with 0
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after reset, got %f", m.scale())
	}
}

func TestOrreryModelPan(t *testing.T) {
	m := NewOrreryModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.panX <= 0 {
		t.Errorf("expected panX > 0 after pan right, got %f", m.panX)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.panY >= 0 {
		t.Errorf("expected panY < 0 after pan up, got %f", m.panY)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.panX != 0 || m.panY != 0 {
		t.Errorf("expected pan (0, 0) after center, got (%f, %f)", m.panX, m.panY)
	}

	// Reset with 'r' also centers
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.panX != 0 || m.panY != 0 {
		t.Errorf("expected pan (0, 0) after reset, got (%f, %f)", m.panX, m.panY)
	}
}

func TestOrreryModelScaleMode(t *testing.T) {
	m := NewOrreryModel()

	if m.scaleMode != orrery.ScaleLogR {
		t.Errorf("expected initial mode ScaleLogR, got %d", m.scaleMode)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if m.scaleMode != orrery.ScaleInner {
		t.Errorf("expected ScaleInner after toggle, got %d", m.scaleMode)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if m.scaleMode != orrery.ScaleOuter {
		t.Errorf("expected ScaleOuter after second toggle, got %d", m.scaleMode)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if m.scaleMode != orrery.ScaleLogR {
		t.Errorf("expected ScaleLogR after third toggle, got %d", m.scaleMode)
	}
}

func TestOrreryModelView(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(80, 24)
	m = m.UpdateData(testSnapshot())

	view := m.View()
	if len(view) == 0 {
		t.Error("expected non-empty view")
	}

	if !containsRune(view, '☉') {
		t.Error("view should contain Sun glyph ☉")
	}
}

func TestOrreryModelViewTooSmall(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(20, 5)
	m = m.UpdateData(testSnapshot())

	view := m.View()
	if !containsRune(view, 'T') { // "Terminal too small..."
		t.Errorf("expected size warning, got %q", view)
	}
}

func TestOrreryModelFocusedBody(t *testing.T) {
	m := NewOrreryModel()
	m = m.UpdateData(testSnapshot())

	// Initially focused on Sun (nil because focusIdx = -1)
	if m.FocusedBody() != nil {
		t.Error("expected nil for Sun focus")
	}

	// Focus next lands on index 0, the Sun body itself
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	focused := m.FocusedBody()
	if focused == nil || focused.Name != "Sun" {
		t.Errorf("expected Sun at index 0, got %v", focused)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	focused = m.FocusedBody()
	if focused == nil || focused.Name != "Mercury" {
		t.Errorf("expected Mercury, got %v", focused)
	}
}

func TestOrreryModelSetFocusByCode(t *testing.T) {
	m := NewOrreryModel()
	m = m.UpdateData(testSnapshot())

	m.SetFocusByCode("MARS")
	focused := m.FocusedBody()
	if focused == nil || focused.Code != "MARS" {
		t.Errorf("expected MARS after SetFocusByCode, got %v", focused)
	}
}

func TestOrreryModelLabelMode(t *testing.T) {
	m := NewOrreryModel()

	if m.labelMode != LabelFocused {
		t.Errorf("initial labelMode = %d, want %d (LabelFocused)", m.labelMode, LabelFocused)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.labelMode != LabelAll {
		t.Errorf("after first toggle, labelMode = %d, want %d (LabelAll)", m.labelMode, LabelAll)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.labelMode != LabelNone {
		t.Errorf("after second toggle, labelMode = %d, want %d (LabelNone)", m.labelMode, LabelNone)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.labelMode != LabelFocused {
		t.Errorf("after third toggle, labelMode = %d, want %d (LabelFocused)", m.labelMode, LabelFocused)
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
