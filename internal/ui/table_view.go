package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/vsop87/internal/orrery"
)

// TableModel renders the planetary positions as a text table.
type TableModel struct {
	width    int
	height   int
	snapshot orrery.Snapshot

	selected int  // Row index into planets
	degrees  bool // Show angles in degrees instead of radians
}

// NewTableModel creates a new positions table model.
func NewTableModel() TableModel {
	return TableModel{degrees: true}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the rendered snapshot.
func (m TableModel) UpdateData(snapshot orrery.Snapshot) TableModel {
	m.snapshot = snapshot
	return m
}

// Update handles input messages.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.snapshot.Planets())-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "u":
			m.degrees = !m.degrees
		}
	}
	return m, nil
}

// Selected returns the currently selected planet body, or nil.
func (m TableModel) Selected() *orrery.Body {
	planets := m.snapshot.Planets()
	if m.selected < 0 || m.selected >= len(planets) {
		return nil
	}
	b := planets[m.selected]
	return &b
}

// View renders the positions table.
func (m TableModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	colStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder

	b.WriteString(headerStyle.Render("  Heliocentric Ecliptic Positions"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("JD %.5f · %s",
		m.snapshot.JD, m.snapshot.Time.Format("2006-01-02 15:04 UTC"))))
	b.WriteString("\n\n")

	unit := "rad"
	if m.degrees {
		unit = "deg"
	}
	b.WriteString(colStyle.Render(fmt.Sprintf("  %-10s %14s %14s %14s",
		"Planet", "Lon ("+unit+")", "Lat ("+unit+")", "Dist (AU)")))
	b.WriteString("\n")

	for i, body := range m.snapshot.Planets() {
		lon, lat := body.Coord.Lon, body.Coord.Lat
		if m.degrees {
			lon, lat = body.Coord.LonDeg(), body.Coord.LatDeg()
		}

		line := fmt.Sprintf("  %-10s %14.8f %14.8f %14.8f",
			body.Name, lon, lat, body.Coord.Dist)

		if i == m.selected {
			b.WriteString(selStyle.Render("▶" + line[1:]))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  u: toggle rad/deg | j/k: select"))

	return b.String()
}
